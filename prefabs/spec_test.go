package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadSetEmbedded(t *testing.T) {
	set, err := LoadSet()
	require.NoError(t, err)

	assert.Equal(t, 0.01, set.Physics.Damping)
	assert.Equal(t, -2000.0, set.Physics.Gravity.Y)
	assert.Equal(t, 64.0, set.Physics.TileSize)
	assert.Equal(t, 500.0, set.Bullet.Velocity)
	assert.Equal(t, 10, set.Bullet.Damage)
	assert.Equal(t, 1, set.Scoring.Coin)
	assert.Equal(t, 20, set.Scoring.WrongAnswerHealthLoss)
	assert.Less(t, set.Scoring.QuestionWrong, 0)
	assert.Equal(t, "enemy_chase.tengo", set.Enemy.Script)

	_, err = LoadScript(set.Enemy.Script)
	assert.NoError(t, err)
}

func TestValidate(t *testing.T) {
	base, err := LoadSet()
	require.NoError(t, err)

	cases := []struct {
		name   string
		mutate func(*Set)
	}{
		{"zero_damping", func(s *Set) { s.Physics.Damping = 0 }},
		{"no_tile_size", func(s *Set) { s.Physics.TileSize = 0 }},
		{"flat_player", func(s *Set) { s.Player.Body.Height = 0 }},
		{"inverted_cooldown", func(s *Set) { s.Enemy.AttackCooldownMin = 9 }},
		{"empty_bullet", func(s *Set) { s.Bullet.Width = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := *base
			tc.mutate(&s)
			assert.Error(t, s.Validate())
		})
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: `"#FF8000"`, want: color.NRGBA{R: 255, G: 128, A: 255}},
		{in: `"10203040"`, want: color.NRGBA{R: 16, G: 32, B: 48, A: 64}},
		{in: `"#FFF"`, wantErr: true},
		{in: `"#GG0000"`, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tc.in), &c)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, c.Color)
		})
	}

	var missing *YAMLColor
	assert.Equal(t, color.White, missing.Or(color.White))
}

func TestDecodePropsOverridesOnlyGivenFields(t *testing.T) {
	base := EnemySpec{Health: 30, ViewDistance: 5, Script: "enemy_chase.tengo"}
	got, err := DecodeProps(map[string]any{"view_distance": 8.0, "script": ""}, base)
	require.NoError(t, err)
	assert.Equal(t, 30, got.Health)
	assert.Equal(t, 8.0, got.ViewDistance)
	assert.Empty(t, got.Script)

	same, err := DecodeProps(nil, base)
	require.NoError(t, err)
	assert.Equal(t, base, same)
}

func TestWatcherReportsEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "player.yaml"), []byte("health: 1\n"), 0o644))

	var got []string
	require.Eventually(t, func() bool {
		names, _ := w.Drain()
		got = append(got, names...)
		return len(got) > 0
	}, 2*time.Second, 20*time.Millisecond)

	assert.Contains(t, got, "player.yaml")
	assert.NotContains(t, got, "notes.txt")
	assert.NoError(t, w.Close())
}
