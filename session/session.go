// Package session holds the state of one play-through of a level: score,
// the question and door flags set by collisions, and the final outcome.
package session

import (
	"errors"
	"fmt"
)

var (
	ErrNoQuestion      = errors.New("session: no question available")
	ErrAlreadyAnswered = errors.New("session: question already answered")
)

// Question guards one blocker wall.
type Question struct {
	Text        string   `json:"question"`
	Answers     []string `json:"answers"`
	Correct     string   `json:"correct"`
	Explanation string   `json:"explanation"`
}

// IsCorrect reports whether answer matches the correct answer.
func (q Question) IsCorrect(answer string) bool {
	return answer == q.Correct
}

type Outcome int

const (
	Playing Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// Result is the summary handed to whatever records scores.
type Result struct {
	Level   int
	Score   int
	Elapsed float64
	Outcome Outcome
}

func (r Result) String() string {
	return fmt.Sprintf("level %d %s: score=%d time=%.1fs", r.Level, r.Outcome, r.Score, r.Elapsed)
}

// Session is owned by the game loop and mutated only from the main tick.
type Session struct {
	Level   int
	Score   int
	Elapsed float64

	// QuestionAvailable is true while the player touches a blocker wall;
	// ActiveWall is that wall's 1-based index.
	QuestionAvailable bool
	ActiveWall        int
	// Asking is true while the question overlay is open.
	Asking bool
	// Submitted is set once the open question has been answered.
	Submitted bool

	CanFinish bool
	Outcome   Outcome

	questions []Question
	cleared   map[int]bool
}

func New(level int, questions []Question) *Session {
	qs := make([]Question, len(questions))
	copy(qs, questions)
	return &Session{
		Level:     level,
		questions: qs,
		cleared:   make(map[int]bool),
	}
}

// AddScore adds points; negative amounts are allowed and the score may
// go below zero.
func (s *Session) AddScore(points int) {
	if s == nil {
		return
	}
	s.Score += points
}

// SetQuestionAvailable records that the player reached blocker wall.
func (s *Session) SetQuestionAvailable(wall int) {
	if s == nil {
		return
	}
	if !s.QuestionAvailable || s.ActiveWall != wall {
		s.Submitted = false
	}
	s.QuestionAvailable = true
	s.ActiveWall = wall
}

func (s *Session) ClearQuestion() {
	if s == nil {
		return
	}
	s.QuestionAvailable = false
	s.ActiveWall = 0
	s.Submitted = false
	s.Asking = false
}

// Question returns the question guarding wall.
func (s *Session) Question(wall int) (Question, bool) {
	if s == nil || wall < 1 || wall > len(s.questions) {
		return Question{}, false
	}
	return s.questions[wall-1], true
}

// CurrentQuestion returns the question of the wall the player touches.
func (s *Session) CurrentQuestion() (Question, bool) {
	if s == nil || !s.QuestionAvailable {
		return Question{}, false
	}
	return s.Question(s.ActiveWall)
}

// OpenQuestion shows the current wall's question. Reopening it during the
// same approach keeps an earlier submission.
func (s *Session) OpenQuestion() (Question, error) {
	q, ok := s.CurrentQuestion()
	if !ok {
		return Question{}, ErrNoQuestion
	}
	s.Asking = true
	return q, nil
}

// CloseQuestion hides the overlay without touching the wall state.
func (s *Session) CloseQuestion() {
	if s != nil {
		s.Asking = false
	}
}

// Submit marks the current question as answered. Further calls fail with
// ErrAlreadyAnswered until the player leaves the wall and touches it again.
func (s *Session) Submit() error {
	if _, ok := s.CurrentQuestion(); !ok {
		return ErrNoQuestion
	}
	if s.Submitted {
		return ErrAlreadyAnswered
	}
	s.Submitted = true
	return nil
}

// MarkCleared remembers that wall has been opened.
func (s *Session) MarkCleared(wall int) {
	if s == nil {
		return
	}
	s.cleared[wall] = true
}

func (s *Session) Cleared(wall int) bool {
	return s != nil && s.cleared[wall]
}

// WallCount is the number of blocker walls, one per question.
func (s *Session) WallCount() int {
	if s == nil {
		return 0
	}
	return len(s.questions)
}

func (s *Session) SetCanFinish(v bool) {
	if s == nil {
		return
	}
	s.CanFinish = v
}

// Finish ends the level as won. It has no effect once the level is over.
func (s *Session) Finish() bool {
	if s == nil || s.Over() {
		return false
	}
	s.Outcome = Won
	return true
}

// Lose ends the level as lost. It has no effect once the level is over.
func (s *Session) Lose() bool {
	if s == nil || s.Over() {
		return false
	}
	s.Outcome = Lost
	return true
}

func (s *Session) Over() bool {
	return s != nil && s.Outcome != Playing
}

// Tick advances the level clock while the level is being played.
func (s *Session) Tick(dt float64) {
	if s == nil || s.Over() || dt <= 0 {
		return
	}
	s.Elapsed += dt
}

func (s *Session) Result() Result {
	if s == nil {
		return Result{}
	}
	return Result{Level: s.Level, Score: s.Score, Elapsed: s.Elapsed, Outcome: s.Outcome}
}
