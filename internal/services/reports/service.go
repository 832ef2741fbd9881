package reports

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"securereport/internal/domain"
	"securereport/internal/ports"
)

// maxIDAttempts bounds identifier regeneration on the (negligible) chance of
// a collision. Exhausting it means the id space is effectively saturated,
// which is a deployment problem, not a request problem.
const maxIDAttempts = 5

// Service composes the report store into the public lifecycle use cases.
// It holds no report state between calls.
type Service struct {
	repo  ports.ReportRepository
	pub   ports.Publisher
	clock func() time.Time
}

func New(repo ports.ReportRepository, pub ports.Publisher) *Service {
	return &Service{repo: repo, pub: pub, clock: func() time.Time { return time.Now().UTC() }}
}

// WithClock overrides the time source. Test hook.
func (s *Service) WithClock(clock func() time.Time) *Service {
	s.clock = clock
	return s
}

// Create validates the payload, assigns a fresh identifier and persists the
// report with status pending. On an id collision it regenerates and retries
// rather than overwriting.
func (s *Service) Create(ctx context.Context, in domain.NewReportInput) (*domain.Report, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	media := in.Media
	if media == nil {
		media = []domain.MediaItem{}
	}
	now := s.clock()
	r := &domain.Report{
		AnonymousUserID:  in.AnonymousUserID,
		Category:         in.Category,
		Description:      in.Description,
		Location:         in.Location,
		AddressReference: in.AddressReference,
		Media:            media,
		Status:           domain.StatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		r.ID = domain.NewReportID()
		err := s.repo.Insert(ctx, r)
		if err == nil {
			s.pub.ReportCreated(ctx, r)
			return r, nil
		}
		if !errors.Is(err, domain.ErrDuplicateID) {
			return nil, err
		}
	}
	log.Printf("reports: id generation exhausted after %d attempts; id space saturated", maxIDAttempts)
	return nil, fmt.Errorf("report id generation exhausted after %d attempts", maxIDAttempts)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Report, error) {
	return s.repo.GetByID(ctx, id)
}

// ListForUser correlates an anonymous user token to its reports, newest
// first. A token that never submitted anything yields an empty slice.
func (s *Service) ListForUser(ctx context.Context, anonymousUserID string) ([]domain.Report, error) {
	return s.repo.ListByUser(ctx, anonymousUserID)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Report, error) {
	return s.repo.ListAll(ctx)
}

// Transition moves a report along the lifecycle state machine:
// pending → in_review → approved|rejected → resolved. A same-state target is
// accepted idempotently and still refreshes updated_at through the store.
func (s *Service) Transition(ctx context.Context, id string, next domain.Status) (*domain.Report, error) {
	if !next.Valid() {
		return nil, &domain.ValidationError{Fields: map[string]string{"status": "unknown status"}}
	}
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(current.Status, next) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current.Status, next)
	}
	updated, err := s.repo.UpdateStatus(ctx, id, next, s.clock())
	if err != nil {
		return nil, err
	}
	s.pub.ReportStatusUpdated(ctx, updated, current.Status)
	return updated, nil
}

// Force sets any valid status without consulting the transition table. This
// is the administrative override path; the HTTP layer gates it behind the
// admin key.
func (s *Service) Force(ctx context.Context, id string, next domain.Status) (*domain.Report, error) {
	if !next.Valid() {
		return nil, &domain.ValidationError{Fields: map[string]string{"status": "unknown status"}}
	}
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated, err := s.repo.UpdateStatus(ctx, id, next, s.clock())
	if err != nil {
		return nil, err
	}
	s.pub.ReportStatusUpdated(ctx, updated, current.Status)
	return updated, nil
}
