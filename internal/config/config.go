// Package config provides YAML-based game tuning, difficulty presets and
// progression, persisted user settings and launcher layout.
package config

// SnakeConfig tunes the Snake game.
type SnakeConfig struct {
	Board      SnakeBoard       `yaml:"board"`
	Movement   SnakeMovement    `yaml:"movement"`
	Gameplay   SnakeGameplay    `yaml:"gameplay"`
	PowerUps   SnakePowerUps    `yaml:"powerups"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeBoard sets the playfield size in cells. Zero means fit the screen.
type SnakeBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeMovement controls how often the snake advances.
type SnakeMovement struct {
	MoveEveryTicks    int `yaml:"move_every_ticks"`
	MinMoveEveryTicks int `yaml:"min_move_every_ticks"`
}

// SnakeGameplay holds scoring and start parameters.
type SnakeGameplay struct {
	InitialLength int `yaml:"initial_length"`
	FoodPoints    int `yaml:"food_points"`
	ExtraLives    int `yaml:"extra_lives"` // crashes survived before game over
}

// SnakePowerUps controls the bonus items that may appear after eating.
type SnakePowerUps struct {
	SpawnChance   int `yaml:"spawn_chance"`   // percent per food eaten
	LifetimeTicks int `yaml:"lifetime_ticks"` // how long an item stays on the board
	BoostTicks    int `yaml:"boost_ticks"`    // double speed duration
	ShrinkBy      int `yaml:"shrink_by"`
	ShrinkPoints  int `yaml:"shrink_points"`
}

// PongConfig tunes the Pong game.
type PongConfig struct {
	Paddle     PongPaddle       `yaml:"paddle"`
	Ball       PongBall         `yaml:"ball"`
	CPU        PongCPU          `yaml:"cpu"`
	Gameplay   PongGameplay     `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PongPaddle sets paddle geometry and player speed.
type PongPaddle struct {
	Height int     `yaml:"height"`
	Margin int     `yaml:"margin"`
	Speed  float64 `yaml:"speed"`
}

// PongBall sets the serve velocity in cells per tick.
type PongBall struct {
	ServeVX  float64 `yaml:"serve_vx"`
	ServeVY  float64 `yaml:"serve_vy"`
	SpeedUp  float64 `yaml:"speed_up"` // factor applied to vx on every paddle hit
	MaxSpeed float64 `yaml:"max_speed"`
}

// PongCPU tunes the computer-controlled paddle.
type PongCPU struct {
	Speed    float64 `yaml:"speed"`
	DeadZone float64 `yaml:"dead_zone"`
}

// PongGameplay holds match rules.
type PongGameplay struct {
	WinScore   int `yaml:"win_score"`
	ServeDelay int `yaml:"serve_delay"` // ticks before the ball moves after a point
}

// BreakoutConfig tunes the Breakout game.
type BreakoutConfig struct {
	Physics    BreakoutPhysics  `yaml:"physics"`
	Paddle     BreakoutPaddle   `yaml:"paddle"`
	Bricks     BreakoutBricks   `yaml:"bricks"`
	Gameplay   BreakoutGameplay `yaml:"gameplay"`
	PowerUps   BreakoutPowerUps `yaml:"powerups"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BreakoutPhysics uses fixed-point units (1000 = one cell) per tick.
type BreakoutPhysics struct {
	BallSpeed    int `yaml:"ball_speed"`
	MaxBallSpeed int `yaml:"max_ball_speed"`
}

// BreakoutPaddle sets paddle size and speed in cells.
type BreakoutPaddle struct {
	Width int `yaml:"width"`
	Speed int `yaml:"speed"`
}

// BreakoutBricks describes the generated brick wall.
type BreakoutBricks struct {
	Rows      int `yaml:"rows"`
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TopOffset int `yaml:"top_offset"`
	Points    int `yaml:"points"`
}

// BreakoutGameplay holds lives.
type BreakoutGameplay struct {
	Lives int `yaml:"lives"`
}

// BreakoutPowerUps controls pickups dropped by broken bricks.
type BreakoutPowerUps struct {
	SpawnChance   int `yaml:"spawn_chance"`   // percent per destroyed brick
	FallSpeed     int `yaml:"fall_speed"`     // fixed-point units per tick
	DurationTicks int `yaml:"duration_ticks"` // lifetime of timed effects
	ExpandBy      int `yaml:"expand_by"`      // extra paddle cells
	ExtraBalls    int `yaml:"extra_balls"`
	SlowPercent   int `yaml:"slow_percent"` // ball speed while slowed
}

// InvadersConfig tunes the Space Invaders game.
type InvadersConfig struct {
	Formation  InvadersFormation `yaml:"formation"`
	March      InvadersMarch     `yaml:"march"`
	Fire       InvadersFire      `yaml:"fire"`
	Shelters   InvadersShelters  `yaml:"shelters"`
	Gameplay   InvadersGameplay  `yaml:"gameplay"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// InvadersFormation sets the alien grid.
type InvadersFormation struct {
	Rows     int `yaml:"rows"`
	Cols     int `yaml:"cols"`
	SpacingX int `yaml:"spacing_x"`
	SpacingY int `yaml:"spacing_y"`
	Top      int `yaml:"top"`
}

// InvadersMarch controls the sideways sweep.
type InvadersMarch struct {
	EveryTicks    int `yaml:"every_ticks"`
	MinEveryTicks int `yaml:"min_every_ticks"`
	Drop          int `yaml:"drop"`
}

// InvadersFire controls projectiles.
type InvadersFire struct {
	BulletEveryTicks int `yaml:"bullet_every_ticks"` // ticks per bullet cell
	PlayerCooldown   int `yaml:"player_cooldown"`
	EnemyMinCooldown int `yaml:"enemy_min_cooldown"`
	EnemyMaxCooldown int `yaml:"enemy_max_cooldown"`
	MaxEnemyBullets  int `yaml:"max_enemy_bullets"`
}

// InvadersShelters sets the bunkers between ship and aliens.
type InvadersShelters struct {
	Count  int `yaml:"count"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// InvadersGameplay holds lives and scoring.
type InvadersGameplay struct {
	Lives       int `yaml:"lives"`
	AlienPoints int `yaml:"alien_points"`
	ShipSpeed   int `yaml:"ship_speed"`
}

// TetrisConfig tunes the Tetris game.
type TetrisConfig struct {
	Mode       string           `yaml:"mode"` // select, single or versus
	Board      TetrisBoard      `yaml:"board"`
	Gravity    TetrisGravity    `yaml:"gravity"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TetrisBoard sets the well size.
type TetrisBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TetrisGravity controls fall speed and leveling.
type TetrisGravity struct {
	FallEveryTicks    int `yaml:"fall_every_ticks"`
	MinFallEveryTicks int `yaml:"min_fall_every_ticks"`
	LevelStep         int `yaml:"level_step"` // ticks removed from the interval per level
	LinesPerLevel     int `yaml:"lines_per_level"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // score or ticks at which the level reaches 1.0
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // added to speed at max difficulty
}

// DifficultyPreset is a named difficulty.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists presets in cycling order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset maps a name to a preset, defaulting to normal.
func ParsePreset(name string) DifficultyPreset {
	for _, p := range Presets {
		if string(p) == name {
			return p
		}
	}
	return DifficultyNormal
}

// Next returns the preset after p, wrapping around.
func (p DifficultyPreset) Next(step int) DifficultyPreset {
	idx := 0
	for i, q := range Presets {
		if q == p {
			idx = i
		}
	}
	n := len(Presets)
	return Presets[((idx+step)%n+n)%n]
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// applyPreset sets progression fields shared by every game.
func applyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		d.Enabled = false
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
}
