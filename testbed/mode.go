package testbed

// StepDt is the fixed simulation timestep in seconds
const StepDt = 0.016

// RunMode decides whether an update tick advances the simulation
type RunMode uint8

const (
	Running RunMode = iota
	Stopped
	SingleStep
)

func (m RunMode) String() string {
	switch m {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	case SingleStep:
		return "single-step"
	default:
		return "unknown"
	}
}

// Stepper advances a simulation by dt seconds
type Stepper interface {
	Step(dt float64)
}

// Controller holds the run mode and applies it on every update tick
type Controller struct {
	mode RunMode
}

// NewController starts in the given mode
func NewController(initial RunMode) *Controller {
	return &Controller{mode: initial}
}

// Mode returns the current mode
func (c *Controller) Mode() RunMode {
	return c.mode
}

// SetMode forces a mode
func (c *Controller) SetMode(m RunMode) {
	c.mode = m
}

// Toggle pauses a running simulation and resumes a stopped one
// A pending single step is cancelled
func (c *Controller) Toggle() {
	if c.mode == Stopped {
		c.mode = Running
	} else {
		c.mode = Stopped
	}
}

// RequestStep schedules exactly one step on the next tick
func (c *Controller) RequestStep() {
	c.mode = SingleStep
}

// Tick steps s once unless stopped and reports whether it stepped
// SingleStep falls back to Stopped after its step
func (c *Controller) Tick(s Stepper) bool {
	if c.mode == Stopped {
		return false
	}
	s.Step(StepDt)
	if c.mode == SingleStep {
		c.mode = Stopped
	}
	return true
}
