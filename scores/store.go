// Package scores records the result of every level attempt and answers
// per-level leaderboard queries.
package scores

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/milk9111/quizplatformer/session"
	"gopkg.in/yaml.v3"
)

// TopN is how many entries a level's leaderboard shows.
const TopN = 5

// Record is one finished attempt at a level.
type Record struct {
	Level   int     `yaml:"level"`
	Score   int     `yaml:"score"`
	Elapsed float64 `yaml:"time"`
	Won     bool    `yaml:"win"`
}

type file struct {
	Records []Record `yaml:"records"`
}

// Store keeps records in memory and mirrors them to a YAML file. A Store
// with an empty path never touches the disk.
type Store struct {
	path    string
	records []Record
}

// DefaultPath is scores.yaml under the user config directory, or in the
// working directory when there is none.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "scores.yaml"
	}
	return filepath.Join(dir, "quizplatformer", "scores.yaml")
}

// Memory returns a store that is never saved.
func Memory() *Store {
	return &Store{}
}

// Open loads the store at path. A missing file is an empty store.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scores: open %s: %w", path, err)
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("scores: parse %s: %w", path, err)
	}
	s.records = f.Records
	return s, nil
}

func (s *Store) Path() string { return s.path }

func (s *Store) Len() int { return len(s.records) }

// Commit records a finished level. Results still in progress are
// rejected.
func (s *Store) Commit(r session.Result) error {
	if r.Outcome == session.Playing {
		return fmt.Errorf("scores: level %d is still being played", r.Level)
	}
	s.records = append(s.records, Record{
		Level:   r.Level,
		Score:   r.Score,
		Elapsed: r.Elapsed,
		Won:     r.Outcome == session.Won,
	})
	return s.save()
}

// Reset deletes every record.
func (s *Store) Reset() error {
	s.records = nil
	return s.save()
}

// Top returns up to n records for level, best score first and faster
// time first among equal scores. Lost attempts count too.
func (s *Store) Top(level, n int) []Record {
	var out []Record
	for _, r := range s.records {
		if r.Level == level {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Elapsed < out[j].Elapsed
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Summary renders level's leaderboard for display.
func (s *Store) Summary(level int) string {
	top := s.Top(level, TopN)
	if len(top) == 0 {
		return "No scores saved. Play the level to generate some."
	}
	lines := []string{fmt.Sprintf("Top %d Scores (Level %d):", TopN, level), ""}
	for i, r := range top {
		lines = append(lines, fmt.Sprintf("%d. Score: %d. Time: %.1fs", i+1, r.Score, r.Elapsed))
	}
	return strings.Join(lines, "\n")
}

func (s *Store) save() error {
	if s.path == "" {
		return nil
	}
	data, err := yaml.Marshal(file{Records: s.records})
	if err != nil {
		return fmt.Errorf("scores: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("scores: save %s: %w", s.path, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("scores: save %s: %w", s.path, err)
	}
	return nil
}
