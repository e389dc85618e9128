package tooltip

import "sync"

// Self is the target id of the tooltip box itself. Leaving a target into
// the tooltip keeps it open.
const Self = "tooltip"

// Controller tracks the hovered target while tooltips are enabled. At most
// one target is active at a time.
type Controller struct {
	mu      sync.Mutex
	enabled bool
	target  string
	text    string
	pointer Point
}

// SetEnabled turns tooltips on or off. Disabling hides any open tooltip.
func (c *Controller) SetEnabled(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = on
	if !on {
		c.hide()
	}
}

func (c *Controller) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// Enter shows text for target at p. It is ignored while disabled, for an
// empty text, or when target is already active.
func (c *Controller) Enter(target, text string, p Point) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled || target == "" || text == "" || target == c.target {
		return false
	}
	c.target = target
	c.text = text
	c.pointer = p
	return true
}

// Move follows the pointer while a target is active.
func (c *Controller) Move(p Point) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled || c.target == "" {
		return
	}
	c.pointer = p
}

// Leave hides the tooltip when the pointer leaves the active target. It is
// ignored for other targets and when into is the tooltip itself or a part
// of the same target.
func (c *Controller) Leave(target, into string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled || target == "" || target != c.target {
		return false
	}
	if into == Self || into == c.target {
		return false
	}
	c.hide()
	return true
}

// Hide closes the tooltip unconditionally.
func (c *Controller) Hide() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hide()
}

func (c *Controller) hide() {
	c.target = ""
	c.text = ""
}

// State describes the visible tooltip.
type State struct {
	Visible bool
	Target  string
	Text    string
	Pointer Point
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{Visible: c.target != "", Target: c.target, Text: c.text, Pointer: c.pointer}
}
