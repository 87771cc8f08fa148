package entity

// Physics holds the fixed tuning values of the character simulation.
// Every value is in pixels, or pixels per frame for speeds.
type Physics struct {
	Floor            int // Lowest y the character's position may reach
	Height           int // Canvas height; the ground line the boy stands on
	StartingPoint    int // Initial x position
	RunningSpeed     int // Added to x-velocity on Run
	JumpSpeed        int // y-velocity set on Jump (negative = upward)
	Gravity          int // Added to y-velocity each frame
	TerminalVelocity int // Cap for y-velocity
}

// DefaultPhysics returns the stock tuning
func DefaultPhysics() Physics {
	return Physics{
		Floor:            449,
		Height:           570,
		StartingPoint:    -20,
		RunningSpeed:     4,
		JumpSpeed:        -25,
		Gravity:          1,
		TerminalVelocity: 20,
	}
}

// PlayerHeight is the vertical extent between the boy's position and his feet
func (p Physics) PlayerHeight() int {
	return p.Height - p.Floor
}

// Context is the physics and animation payload carried by every character state.
// It is always passed by value so a transition never aliases the previous state.
type Context struct {
	Frame    int
	Position Point
	Velocity Point
}

// newContext creates the context of a boy standing on the floor at the starting point
func newContext(p Physics) Context {
	return Context{
		Position: Point{X: p.StartingPoint, Y: p.Floor},
	}
}

// Update advances one frame: animation counter, gravity, integration and floor clamp.
// frames is the frame count of the active animation.
func (c Context) Update(frames int, p Physics) Context {
	if c.Frame < frames {
		c.Frame++
	} else {
		c.Frame = 0
	}

	if c.Velocity.Y < p.TerminalVelocity {
		c.Velocity.Y += p.Gravity
		if c.Velocity.Y > p.TerminalVelocity {
			c.Velocity.Y = p.TerminalVelocity
		}
	}

	c.Position.Y += c.Velocity.Y
	if c.Position.Y > p.Floor {
		c.Position.Y = p.Floor
	}

	return c
}

func (c Context) resetFrame() Context {
	c.Frame = 0
	return c
}

func (c Context) runRight(p Physics) Context {
	c.Velocity.X += p.RunningSpeed
	return c
}

func (c Context) setVerticalVelocity(y int) Context {
	c.Velocity.Y = y
	return c
}

func (c Context) stop() Context {
	c.Velocity.X = 0
	return c
}

// setOn places the boy so his feet rest on the surface at y
func (c Context) setOn(y int, p Physics) Context {
	c.Position.Y = y - p.PlayerHeight()
	return c
}
