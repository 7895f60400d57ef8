package breakout

// Scale is the number of fixed-point units per cell.
const Scale = 1000

// Fixed is a fixed-point coordinate scaled by Scale.
// Integer math keeps the simulation deterministic.
type Fixed int

// ToFixed converts a cell coordinate to fixed-point.
func ToFixed(cell int) Fixed {
	return Fixed(cell * Scale)
}

// ToCell converts to a cell coordinate, flooring toward negative infinity.
func (f Fixed) ToCell() int {
	if f < 0 {
		return -int((-f + Scale - 1) / Scale)
	}
	return int(f) / Scale
}

// Abs returns the absolute value.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// ClampFixed restricts val to [lo, hi].
func ClampFixed(val, lo, hi Fixed) Fixed {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Ball is the ball's position and per-tick velocity.
type Ball struct {
	X, Y   Fixed
	VX, VY Fixed
}

// Cell returns the ball's cell.
func (b *Ball) Cell() (int, int) {
	return b.X.ToCell(), b.Y.ToCell()
}

// Move advances the ball by its velocity.
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// Paddle is the player's bat on a fixed row.
type Paddle struct {
	X     Fixed // left edge
	Y     int
	Width int
}

// CenterX returns the paddle's center.
func (p *Paddle) CenterX() Fixed {
	return p.X + ToFixed(p.Width)/2
}

// Right returns the paddle's right edge.
func (p *Paddle) Right() Fixed {
	return p.X + ToFixed(p.Width)
}

// CollisionSide is the side of an object that was hit.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionTop
	CollisionBottom
	CollisionLeft
	CollisionRight
)

// CheckWallCollision reflects the ball off the side and top walls of a
// width x height field and reports whether it fell past the bottom.
// Both axes are resolved in one call, so a corner sends the ball back
// on both.
func CheckWallCollision(ball *Ball, width, height int) (fellOff bool) {
	switch {
	case ball.X < 0:
		ball.X = 0
		ball.VX = ball.VX.Abs()
	case ball.X >= ToFixed(width):
		ball.X = ToFixed(width) - 1
		ball.VX = -ball.VX.Abs()
	}
	if ball.Y < 0 {
		ball.Y = 0
		ball.VY = ball.VY.Abs()
	}
	return ball.Y >= ToFixed(height)
}

// CheckPaddleCollision bounces a descending ball off the paddle.
// The hit position sets the outgoing angle: edges deflect harder.
func CheckPaddleCollision(ball *Ball, paddle *Paddle, speed Fixed) bool {
	if ball.VY <= 0 {
		return false
	}
	if y := ball.Y.ToCell(); y != paddle.Y && y != paddle.Y-1 {
		return false
	}
	if ball.X < paddle.X || ball.X > paddle.Right() {
		return false
	}

	half := ToFixed(paddle.Width) / 2
	var offset Fixed // -Scale at the left edge, +Scale at the right
	if half > 0 {
		offset = (ball.X - paddle.CenterX()) * Scale / half
	}

	ball.VX = offset * speed / Scale
	ball.VY = -speed
	if ball.VX.Abs() > speed {
		ball.VX = speed * Fixed(sign(ball.VX))
	}
	ball.Y = ToFixed(paddle.Y - 1)
	return true
}

func sign(f Fixed) int {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	}
	return 0
}

// CheckBrickCollision finds the live brick under the ball, if any, and the
// face it was struck on. Returns row and col -1 when nothing was hit.
// The face is judged from where the ball was one tick earlier; corner hits
// bounce vertically.
func CheckBrickCollision(ball *Ball, wall *Wall) (row, col int, side CollisionSide) {
	cx, cy := ball.Cell()
	row, col, ok := wall.CellAt(cx, cy)
	if !ok || !wall.Bricks[row][col].Alive {
		return -1, -1, CollisionNone
	}

	r := wall.BrickRect(row, col)
	prevX := (ball.X - ball.VX).ToCell()
	prevY := (ball.Y - ball.VY).ToCell()
	fromAbove := prevY < r.Y
	fromBelow := prevY >= r.Bottom()
	fromSide := prevX < r.X || prevX >= r.Right()

	switch {
	case fromAbove:
		return row, col, CollisionTop
	case fromBelow:
		return row, col, CollisionBottom
	case fromSide && ball.VX > 0:
		return row, col, CollisionLeft
	case fromSide && ball.VX < 0:
		return row, col, CollisionRight
	case ball.VY > 0:
		return row, col, CollisionTop
	default:
		return row, col, CollisionBottom
	}
}

// ApplyCollisionBounce sends the ball away from the struck face of a brick.
func ApplyCollisionBounce(ball *Ball, side CollisionSide) {
	switch side {
	case CollisionTop:
		ball.VY = -ball.VY.Abs()
	case CollisionBottom:
		ball.VY = ball.VY.Abs()
	case CollisionLeft:
		ball.VX = -ball.VX.Abs()
	case CollisionRight:
		ball.VX = ball.VX.Abs()
	}
}
