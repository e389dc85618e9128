package history

import "log/slog"

// Notice is a user-facing message produced by an operation, such as a
// rejected custom range or a failed load.
type Notice struct {
	Level   slog.Level
	Message string
}

func (c *Controller) notify(level slog.Level, msg string) {
	c.notices = append(c.notices, Notice{Level: level, Message: msg})
}

// Notices returns and clears the pending notices.
func (c *Controller) Notices() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.notices
	c.notices = nil
	return out
}
