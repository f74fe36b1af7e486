package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// DecodeProps re-decodes a loosely typed property bag (for example the
// props of a level spawn marker) into T.
func DecodeProps[T any](raw map[string]any, into T) (T, error) {
	if len(raw) == 0 {
		return into, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return into, err
	}
	out := into
	if err := yaml.Unmarshal(b, &out); err != nil {
		return into, err
	}
	return out, nil
}

type VectorSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type PhysicsSpec struct {
	Gravity         VectorSpec `yaml:"gravity"`
	Damping         float64    `yaml:"damping"`
	Iterations      int        `yaml:"iterations"`
	GroundThreshold float64    `yaml:"ground_threshold"`
	Friction        float64    `yaml:"friction"`
	DeadZone        float64    `yaml:"dead_zone"`
	FrameDistance   float64    `yaml:"frame_distance"`
	TileSize        float64    `yaml:"tile_size"`
	TPS             int        `yaml:"tps"`
}

type BodySpec struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Mass      float64 `yaml:"mass"`
	Friction  float64 `yaml:"friction"`
	MaxSpeedH float64 `yaml:"max_speed_h"`
	MaxSpeedV float64 `yaml:"max_speed_v"`
}

type PlayerSpec struct {
	Name           string     `yaml:"name"`
	Health         int        `yaml:"health"`
	MoveForce      float64    `yaml:"move_force"`
	JumpImpulse    float64    `yaml:"jump_impulse"`
	AttackCooldown float64    `yaml:"attack_cooldown"`
	MoveFriction   float64    `yaml:"move_friction"`
	StopFriction   float64    `yaml:"stop_friction"`
	Body           BodySpec   `yaml:"body"`
	Color          *YAMLColor `yaml:"color"`
}

type EnemySpec struct {
	Name              string     `yaml:"name"`
	Health            int        `yaml:"health"`
	MoveForce         float64    `yaml:"move_force"`
	ViewDistance      float64    `yaml:"view_distance"` // tiles
	AttackCooldownMin float64    `yaml:"attack_cooldown_min"`
	AttackCooldownMax float64    `yaml:"attack_cooldown_max"`
	Script            string     `yaml:"script"`
	Body              BodySpec   `yaml:"body"`
	Color             *YAMLColor `yaml:"color"`
}

type BulletSpec struct {
	Width    float64    `yaml:"width"`
	Height   float64    `yaml:"height"`
	Velocity float64    `yaml:"velocity"`
	Damage   int        `yaml:"damage"`
	Offset   float64    `yaml:"offset"`
	Color    *YAMLColor `yaml:"color"`
}

type ScoringSpec struct {
	Coin                  int `yaml:"coin"`
	EnemyKill             int `yaml:"enemy_kill"`
	QuestionCorrect       int `yaml:"question_correct"`
	QuestionWrong         int `yaml:"question_wrong"`
	WrongAnswerHealthLoss int `yaml:"wrong_answer_health_loss"`
}

// Set is every tuning file the game reads.
type Set struct {
	Physics PhysicsSpec
	Player  PlayerSpec
	Enemy   EnemySpec
	Bullet  BulletSpec
	Scoring ScoringSpec
}

// Files lists the spec files making up a Set.
var Files = []string{"physics.yaml", "player.yaml", "enemy.yaml", "bullet.yaml", "scoring.yaml"}

func LoadSet() (*Set, error) {
	var (
		set Set
		err error
	)
	if set.Physics, err = LoadSpec[PhysicsSpec]("physics.yaml"); err != nil {
		return nil, err
	}
	if set.Player, err = LoadSpec[PlayerSpec]("player.yaml"); err != nil {
		return nil, err
	}
	if set.Enemy, err = LoadSpec[EnemySpec]("enemy.yaml"); err != nil {
		return nil, err
	}
	if set.Bullet, err = LoadSpec[BulletSpec]("bullet.yaml"); err != nil {
		return nil, err
	}
	if set.Scoring, err = LoadSpec[ScoringSpec]("scoring.yaml"); err != nil {
		return nil, err
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return &set, nil
}

// Validate rejects values the simulation cannot run with.
func (s *Set) Validate() error {
	switch {
	case s.Physics.Damping <= 0 || s.Physics.Damping > 1:
		return fmt.Errorf("prefabs: physics.yaml: damping %v outside (0, 1]", s.Physics.Damping)
	case s.Physics.TileSize <= 0:
		return fmt.Errorf("prefabs: physics.yaml: tile_size must be positive")
	case s.Player.Body.Width <= 0 || s.Player.Body.Height <= 0:
		return fmt.Errorf("prefabs: player.yaml: body size must be positive")
	case s.Enemy.Body.Width <= 0 || s.Enemy.Body.Height <= 0:
		return fmt.Errorf("prefabs: enemy.yaml: body size must be positive")
	case s.Enemy.AttackCooldownMin > s.Enemy.AttackCooldownMax:
		return fmt.Errorf("prefabs: enemy.yaml: attack_cooldown_min above max")
	case s.Bullet.Width <= 0 || s.Bullet.Height <= 0:
		return fmt.Errorf("prefabs: bullet.yaml: size must be positive")
	}
	return nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i*2 < len(s); i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return fmt.Errorf("invalid color format: %s", value.Value)
		}
		rgba[i] = uint8(v)
	}

	c.Color = color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}

// Or returns the color, or fallback when none was configured.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
