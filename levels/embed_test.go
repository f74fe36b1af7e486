package levels

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedLevels(t *testing.T) {
	ids := IDs()
	require.Equal(t, []int{1, 2}, ids)

	for _, id := range ids {
		lvl, err := Load(id)
		require.NoError(t, err, "level %d", id)
		assert.Equal(t, 2, lvl.BlockerWalls())
		assert.Len(t, lvl.Questions, 2)
		for _, q := range lvl.Questions {
			assert.Contains(t, q.Answers, q.Correct, "correct answer must be offered: %q", q.Text)
		}
	}
}

func TestLoadMissingLevel(t *testing.T) {
	_, err := Load(99)
	require.Error(t, err)

	var missing *MissingLevelError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, 99, missing.ID)
}

func TestLoadLevelFromFSValidation(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "short_layer",
			body:    `{"width":2,"height":2,"layers":[[1,1,1]],"entities":[{"type":"player","x":0,"y":0}]}`,
			wantErr: "layer 0 has 3 tiles",
		},
		{
			name:    "no_player",
			body:    `{"width":1,"height":1,"layers":[[0]]}`,
			wantErr: "exactly one player",
		},
		{
			name:    "marker_outside",
			body:    `{"width":1,"height":1,"entities":[{"type":"player","x":0,"y":0},{"type":"coin","x":4,"y":0}]}`,
			wantErr: "outside the grid",
		},
		{
			name: "wall_without_question",
			body: `{"width":2,"height":1,"layers":[[0,1]],"layer_meta":[{"physics":true,"blocker":true}],
				"entities":[{"type":"player","x":0,"y":0}]}`,
			wantErr: "1 blocker walls but only 0 questions",
		},
		{
			name: "ok",
			body: `{"width":2,"height":1,"layers":[[0,1]],"layer_meta":[{"physics":true,"blocker":true}],
				"entities":[{"type":"player","x":0,"y":0}],
				"questions":[{"question":"q","answers":["a"],"correct":"a"}]}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fsys := fstest.MapFS{"level.json": &fstest.MapFile{Data: []byte(tc.body)}}
			lvl, err := LoadLevelFromFS(fsys, "level.json")
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "a", lvl.Questions[0].Correct)
		})
	}
}
