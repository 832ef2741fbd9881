// Package memory is an in-process ReportRepository/UserRepository used by
// tests and local development. It honors the same contracts as the Postgres
// adapter: duplicate detection, newest-first ordering, atomic status update.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"securereport/internal/domain"
	"securereport/internal/ports"
)

type Store struct {
	mu      sync.Mutex
	reports map[string]domain.Report
	users   map[string]ports.User
}

func New() *Store {
	return &Store{
		reports: map[string]domain.Report{},
		users:   map[string]ports.User{},
	}
}

func (s *Store) Insert(_ context.Context, r *domain.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.reports[r.ID]; exists {
		return domain.ErrDuplicateID
	}
	s.reports[r.ID] = cloneReport(*r)
	return nil
}

func (s *Store) GetByID(_ context.Context, id string) (*domain.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reports[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := cloneReport(r)
	return &out, nil
}

func (s *Store) ListByUser(_ context.Context, anonymousUserID string) ([]domain.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Report{}
	for _, r := range s.reports {
		if r.AnonymousUserID == anonymousUserID {
			out = append(out, cloneReport(r))
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *Store) ListAll(_ context.Context) ([]domain.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Report{}
	for _, r := range s.reports {
		out = append(out, cloneReport(r))
	}
	sortNewestFirst(out)
	return out, nil
}

// UpdateStatus performs the read-modify-write under one lock so concurrent
// callers never observe a torn status/updated_at pair.
func (s *Store) UpdateStatus(_ context.Context, id string, status domain.Status, now time.Time) (*domain.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reports[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	r.Status = status
	r.UpdatedAt = now
	s.reports[id] = r
	out := cloneReport(r)
	return &out, nil
}

func (s *Store) CreateUser(_ context.Context, u *ports.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(u.Email)
	if _, exists := s.users[key]; exists {
		return ports.ErrEmailTaken
	}
	s.users[key] = *u
	return nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*ports.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func sortNewestFirst(reports []domain.Report) {
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
}

func cloneReport(r domain.Report) domain.Report {
	media := make([]domain.MediaItem, len(r.Media))
	copy(media, r.Media)
	r.Media = media
	coords := make([]float64, len(r.Location.Coordinates))
	copy(coords, r.Location.Coordinates)
	r.Location.Coordinates = coords
	return r
}
