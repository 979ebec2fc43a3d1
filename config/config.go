package config

import (
	"errors"
	"fmt"
)

// StopMode selects how the player sheds horizontal speed with no direction held.
type StopMode string

const (
	// StopSnap zeroes horizontal speed at once, but only while grounded.
	StopSnap StopMode = "snap"
	// StopDecay scales horizontal speed by slow_down^dt every frame.
	StopDecay StopMode = "decay"
)

// PlayerConfig contains all player tuning values
type PlayerConfig struct {
	Width            float64  `yaml:"width"`
	Height           float64  `yaml:"height"`
	Mass             float64  `yaml:"mass"`
	WalkAcceleration float64  `yaml:"walk_acceleration"`
	MaxWalkSpeed     float64  `yaml:"max_walk_speed"`
	JumpImpulse      float64  `yaml:"jump_impulse"`
	Gravity          float64  `yaml:"gravity"`
	SlowDown         float64  `yaml:"slow_down"`
	StopMode         StopMode `yaml:"stop_mode"`
	GroundProbe      float64  `yaml:"ground_probe"` // height of the strip tested below the feet
}

// EnemyConfig contains patrol tuning shared by every enemy
type EnemyConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Mass      float64 `yaml:"mass"`
	WalkSpeed float64 `yaml:"walk_speed"`
	Gravity   float64 `yaml:"gravity"`
	TurnProbe float64 `yaml:"turn_probe"` // width of the strip tested at the leading edge
}

// PhysicsConfig contains collision response values
type PhysicsConfig struct {
	Bounce float64 `yaml:"bounce"`
	// MaxStep caps the elapsed time fed to one simulation step. 0 disables the cap.
	MaxStep float64 `yaml:"max_step"`
}

// LevelConfig controls where levels come from
type LevelConfig struct {
	TileSize float64 `yaml:"tile_size"`
	// Dir, when set, replaces the bundled levels with the .txt/.tmx files in it.
	Dir string `yaml:"dir"`
}

type DebugConfig struct {
	Overlay  bool   `yaml:"overlay"`
	LogLevel string `yaml:"log_level"`
}

// Config holds general game configuration
type Config struct {
	Title   string        `yaml:"title"`
	Width   int           `yaml:"width"`
	Height  int           `yaml:"height"`
	TPS     int           `yaml:"tps"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Physics PhysicsConfig `yaml:"physics"`
	Level   LevelConfig   `yaml:"level"`
	Debug   DebugConfig   `yaml:"debug"`
}

// C is the configuration the game window runs with. main replaces it with
// the loaded file before any scene is built.
var C *Config

func init() {
	C = Default()
}

// Default returns the built-in tuning. The embedded barr.yaml mirrors it.
func Default() *Config {
	return &Config{
		Title:  "Barr",
		Width:  640,
		Height: 360,
		TPS:    60,
		Player: PlayerConfig{
			Width:            32,
			Height:           32,
			Mass:             1,
			WalkAcceleration: 1000,
			MaxWalkSpeed:     150,
			JumpImpulse:      450,
			Gravity:          1000,
			SlowDown:         0.01,
			StopMode:         StopSnap,
			GroundProbe:      0.5,
		},
		Enemy: EnemyConfig{
			Width:     32,
			Height:    32,
			Mass:      1,
			WalkSpeed: 60,
			Gravity:   1000,
			TurnProbe: 4,
		},
		Physics: PhysicsConfig{
			Bounce:  0.1,
			MaxStep: 0.1,
		},
		Level: LevelConfig{
			TileSize: 40,
		},
		Debug: DebugConfig{
			LogLevel: "info",
		},
	}
}

// Validate reports every value the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}

	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.mass", c.Player.Mass)
	positive("player.max_walk_speed", c.Player.MaxWalkSpeed)
	positive("player.ground_probe", c.Player.GroundProbe)
	if c.Player.SlowDown <= 0 || c.Player.SlowDown > 1 {
		errs = append(errs, fmt.Errorf("player.slow_down must be in (0, 1], got %v", c.Player.SlowDown))
	}
	switch c.Player.StopMode {
	case StopSnap, StopDecay:
	default:
		errs = append(errs, fmt.Errorf("player.stop_mode must be %q or %q, got %q", StopSnap, StopDecay, c.Player.StopMode))
	}

	positive("enemy.width", c.Enemy.Width)
	positive("enemy.height", c.Enemy.Height)
	positive("enemy.mass", c.Enemy.Mass)
	positive("enemy.turn_probe", c.Enemy.TurnProbe)
	if c.Enemy.WalkSpeed < 0 {
		errs = append(errs, fmt.Errorf("enemy.walk_speed must not be negative, got %v", c.Enemy.WalkSpeed))
	}

	if c.Physics.Bounce < 0 || c.Physics.Bounce >= 1 {
		errs = append(errs, fmt.Errorf("physics.bounce must be in [0, 1), got %v", c.Physics.Bounce))
	}
	if c.Physics.MaxStep < 0 {
		errs = append(errs, fmt.Errorf("physics.max_step must not be negative, got %v", c.Physics.MaxStep))
	}
	positive("level.tile_size", c.Level.TileSize)

	return errors.Join(errs...)
}
