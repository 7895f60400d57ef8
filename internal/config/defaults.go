package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

func scoreProgression(maxAt int, mult float64) DifficultyConfig {
	return DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: maxAt},
		Scaling:     ScalingConfig{SpeedMultiplier: mult},
	}
}

// DefaultSnakeConfig mirrors defaults/snake.yaml.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Movement: SnakeMovement{MoveEveryTicks: 6, MinMoveEveryTicks: 3},
		Gameplay: SnakeGameplay{InitialLength: 3, FoodPoints: 1},
		PowerUps: SnakePowerUps{
			SpawnChance: 10, LifetimeTicks: 600, BoostTicks: 300,
			ShrinkBy: 3, ShrinkPoints: 1,
		},
		Difficulty: scoreProgression(30, 1.0),
	}
}

// DefaultPongConfig mirrors defaults/pong.yaml.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Paddle:     PongPaddle{Height: 5, Margin: 2, Speed: 1.0},
		Ball:       PongBall{ServeVX: 0.5, ServeVY: 0.25, SpeedUp: 1.05, MaxSpeed: 1.5},
		CPU:        PongCPU{Speed: 0.35, DeadZone: 0.5},
		Gameplay:   PongGameplay{WinScore: 10, ServeDelay: 45},
		Difficulty: scoreProgression(10, 1.0),
	}
}

// DefaultBreakoutConfig mirrors defaults/breakout.yaml.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Physics:  BreakoutPhysics{BallSpeed: 300, MaxBallSpeed: 600},
		Paddle:   BreakoutPaddle{Width: 8, Speed: 2},
		Bricks:   BreakoutBricks{Rows: 5, Width: 6, Height: 1, TopOffset: 3, Points: 10},
		Gameplay: BreakoutGameplay{Lives: 3},
		PowerUps: BreakoutPowerUps{
			SpawnChance: 20, FallSpeed: 150, DurationTicks: 300,
			ExpandBy: 4, ExtraBalls: 2, SlowPercent: 50,
		},
		Difficulty: scoreProgression(500, 0.5),
	}
}

// DefaultInvadersConfig mirrors defaults/invaders.yaml.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Formation: InvadersFormation{Rows: 4, Cols: 8, SpacingX: 5, SpacingY: 2, Top: 3},
		March:     InvadersMarch{EveryTicks: 30, MinEveryTicks: 4, Drop: 1},
		Fire: InvadersFire{
			BulletEveryTicks: 2,
			PlayerCooldown:   15,
			EnemyMinCooldown: 40,
			EnemyMaxCooldown: 120,
			MaxEnemyBullets:  3,
		},
		Shelters:   InvadersShelters{Count: 4, Width: 6, Height: 2},
		Gameplay:   InvadersGameplay{Lives: 3, AlienPoints: 10, ShipSpeed: 1},
		Difficulty: scoreProgression(640, 1.0),
	}
}

// DefaultTetrisConfig mirrors defaults/tetris.yaml.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{Width: 10, Height: 20},
		Mode:  "select",
		Gravity: TetrisGravity{
			FallEveryTicks:    48,
			MinFallEveryTicks: 4,
			LevelStep:         4,
			LinesPerLevel:     5,
		},
		Difficulty: DifficultyConfig{
			Enabled:     true,
			Progression: ProgressionConfig{Type: "none"},
			Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
		},
	}
}
