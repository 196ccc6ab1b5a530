package player

import "math"

const (
	groundCounterMax = 5
	// groundEnter is the counter value that turns the flag on.
	groundEnter = groundCounterMax
	// groundExit is the counter value the flag must fall below to turn off.
	groundExit = 2

	groundQuantum = 100.0
)

// GroundDetector decides whether the player stands on something by watching
// its vertical position settle. It ignores physics contacts on purpose: a
// position that stays identical for several ticks is treated as grounded.
//
// The two thresholds form a hysteresis band so single-tick float jitter does
// not make the flag flicker.
//
// The zero value starts ungrounded: a freshly spawned player has to settle
// for five ticks before it counts as standing, so a spawn in mid-air never
// reports grounded.
type GroundDetector struct {
	grounded bool
	counter  int
	lastY    int64
	sampled  bool
}

func quantizeY(y float64) int64 {
	return int64(math.Round(y * groundQuantum))
}

// Update feeds one position sample and returns the resulting flag.
func (g *GroundDetector) Update(y float64) bool {
	q := quantizeY(y)
	if g.sampled && q == g.lastY {
		g.counter = min(g.counter+1, groundCounterMax)
	} else {
		g.counter = max(g.counter-1, 0)
	}

	if g.counter == groundEnter && !g.grounded {
		g.grounded = true
	}
	if g.counter < groundExit && g.grounded {
		g.grounded = false
	}

	g.lastY = q
	g.sampled = true
	return g.grounded
}

func (g GroundDetector) Grounded() bool {
	return g.grounded
}

// Counter exposes the debounce counter, mostly for debugging overlays.
func (g GroundDetector) Counter() int {
	return g.counter
}

// Reset forgets all samples, e.g. after a teleport.
func (g *GroundDetector) Reset() {
	*g = GroundDetector{}
}
