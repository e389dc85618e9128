package settings

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/alexanderramin/histcal/internal/repository"
)

// Store persists the single view snapshot.
type Store interface {
	// Load returns the saved snapshot; false means none or unreadable.
	Load(ctx context.Context) (Snapshot, bool)
	Save(ctx context.Context, s Snapshot) error
	Clear(ctx context.Context) error
}

// RepoStore keeps the snapshot in the settings table under StateKey.
type RepoStore struct {
	repo   repository.SettingsRepo
	logger *slog.Logger
}

func NewRepoStore(repo repository.SettingsRepo, logger *slog.Logger) *RepoStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RepoStore{repo: repo, logger: logger}
}

func (r *RepoStore) Load(ctx context.Context) (Snapshot, bool) {
	raw, err := r.repo.Get(ctx, StateKey)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			r.logger.Warn("settings load failed", "error", err)
		}
		return Snapshot{}, false
	}
	s, ok := Decode(raw)
	if !ok {
		r.logger.Warn("ignoring unreadable settings snapshot")
	}
	return s, ok
}

func (r *RepoStore) Save(ctx context.Context, s Snapshot) error {
	raw, err := s.Encode()
	if err != nil {
		return err
	}
	return r.repo.Put(ctx, StateKey, raw)
}

func (r *RepoStore) Clear(ctx context.Context) error {
	return r.repo.Delete(ctx, StateKey)
}

// MemoryStore is an in-process Store. Raw holds the encoded snapshot so
// tests can seed corrupt data.
type MemoryStore struct {
	mu    sync.Mutex
	Raw   string
	Saves int
}

func (m *MemoryStore) Load(context.Context) (Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Decode(m.Raw)
}

func (m *MemoryStore) Save(_ context.Context, s Snapshot) error {
	raw, err := s.Encode()
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Raw = raw
	m.Saves++
	return nil
}

func (m *MemoryStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Raw = ""
	return nil
}

// SaveCount returns how many times Save succeeded.
func (m *MemoryStore) SaveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Saves
}
