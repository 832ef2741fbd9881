package ports

import (
	"context"
	"time"

	"securereport/internal/domain"
)

// ReportRepository is the durable report store. Implementations own the
// atomicity of UpdateStatus and translate driver failures into the domain
// error taxonomy (ErrNotFound, ErrDuplicateID, ErrStoreUnavailable).
type ReportRepository interface {
	// Insert persists a fully-built report. Fails with ErrDuplicateID when
	// the id already exists; it never overwrites.
	Insert(ctx context.Context, r *domain.Report) error

	GetByID(ctx context.Context, id string) (*domain.Report, error)

	// ListByUser returns the reports authored under anonymousUserID, newest
	// first. An unknown id yields an empty slice, not an error.
	ListByUser(ctx context.Context, anonymousUserID string) ([]domain.Report, error)

	// ListAll returns every report, newest first.
	ListAll(ctx context.Context) ([]domain.Report, error)

	// UpdateStatus sets status and updated_at in one atomic operation and
	// returns the updated row. ErrNotFound when id is unknown.
	UpdateStatus(ctx context.Context, id string, status domain.Status, now time.Time) (*domain.Report, error)
}

// User is a registered account. Only the auth glue touches it; reports are
// keyed by the caller-supplied anonymous id and never cross-checked against
// this table.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// ErrEmailTaken is returned by CreateUser on a duplicate email.
var ErrEmailTaken = errString("email already registered")

type errString string

func (e errString) Error() string { return string(e) }

// UserRepository backs the auth collaborator.
type UserRepository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}
