package settings

import "sync"

// Gate sequences a restore. While restoring, saves and data loads are
// suppressed; the first load fires exactly once, when both the filter
// options and the project page have arrived.
type Gate struct {
	mu            sync.Mutex
	restoring     bool
	filtersReady  bool
	projectsReady bool
}

// Begin starts a restore and clears both readiness flags.
func (g *Gate) Begin() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.restoring = true
	g.filtersReady = false
	g.projectsReady = false
}

// Restoring reports whether a restore is in progress.
func (g *Gate) Restoring() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.restoring
}

// MarkFiltersReady records that filter options are applied. It returns true
// if this call completed the restore and the caller must now load data.
func (g *Gate) MarkFiltersReady() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.restoring {
		return false
	}
	g.filtersReady = true
	return g.finish()
}

// MarkProjectsReady is MarkFiltersReady for the project page.
func (g *Gate) MarkProjectsReady() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.restoring {
		return false
	}
	g.projectsReady = true
	return g.finish()
}

func (g *Gate) finish() bool {
	if g.filtersReady && g.projectsReady {
		g.restoring = false
		return true
	}
	return false
}
