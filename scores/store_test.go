package scores

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/quizplatformer/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func won(level, score int, elapsed float64) session.Result {
	return session.Result{Level: level, Score: score, Elapsed: elapsed, Outcome: session.Won}
}

func TestOpenMissingFileIsEmpty(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "nested", "scores.yaml"))
	require.NoError(t, err)
	assert.Zero(t, s.Len())
}

func TestCommitPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.yaml")
	s, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, s.Commit(won(1, 12, 30.5)))
	require.NoError(t, s.Commit(session.Result{Level: 2, Score: -5, Elapsed: 9, Outcome: session.Lost}))

	reopened, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, 2, reopened.Len())
	assert.Equal(t, []Record{{Level: 1, Score: 12, Elapsed: 30.5, Won: true}}, reopened.Top(1, TopN))
	assert.Equal(t, []Record{{Level: 2, Score: -5, Elapsed: 9, Won: false}}, reopened.Top(2, TopN))
}

func TestCommitRejectsUnfinished(t *testing.T) {
	s := Memory()
	err := s.Commit(session.Result{Level: 1, Outcome: session.Playing})
	assert.Error(t, err)
	assert.Zero(t, s.Len())
}

func TestTop(t *testing.T) {
	s := Memory()
	for _, r := range []session.Result{
		won(1, 10, 50),
		won(1, 30, 80),
		won(2, 99, 1),
		won(1, 30, 40),
		won(1, 5, 10),
		won(1, 20, 20),
		won(1, 1, 5),
	} {
		require.NoError(t, s.Commit(r))
	}

	cases := []struct {
		name   string
		level  int
		n      int
		scores []int
		times  []float64
	}{
		{"best_five_of_level", 1, TopN, []int{30, 30, 20, 10, 5}, []float64{40, 80, 20, 50, 10}},
		{"other_level_only", 2, TopN, []int{99}, []float64{1}},
		{"limit", 1, 2, []int{30, 30}, []float64{40, 80}},
		{"unknown_level", 7, TopN, nil, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var scores []int
			var times []float64
			for _, r := range s.Top(tc.level, tc.n) {
				scores = append(scores, r.Score)
				times = append(times, r.Elapsed)
			}
			assert.Equal(t, tc.scores, scores)
			assert.Equal(t, tc.times, times)
		})
	}
}

func TestSummary(t *testing.T) {
	s := Memory()
	assert.Equal(t, "No scores saved. Play the level to generate some.", s.Summary(1))

	require.NoError(t, s.Commit(won(1, 12, 30.5)))
	assert.Equal(t, "Top 5 Scores (Level 1):\n\n1. Score: 12. Time: 30.5s", s.Summary(1))
}

func TestResetClearsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.yaml")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Commit(won(1, 3, 3)))
	require.NoError(t, s.Reset())

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Zero(t, reopened.Len())
}

func TestOpenCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.yaml")
	require.NoError(t, os.WriteFile(path, []byte("records: [::"), 0o644))
	_, err := Open(path)
	assert.ErrorContains(t, err, "scores: parse")
}
