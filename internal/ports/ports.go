package ports

import (
	"context"

	"securereport/internal/domain"
)

// Publisher emits lifecycle events. Publishing is best-effort: callers log
// failures and never fail the request on a publish error.
type Publisher interface {
	ReportCreated(ctx context.Context, r *domain.Report)
	ReportStatusUpdated(ctx context.Context, r *domain.Report, old domain.Status)
}

// Uploader stores a media binary with an external host and returns the
// hosted reference. The report core only ever sees the resulting pair.
type Uploader interface {
	Upload(ctx context.Context, data []byte, contentType string) (domain.MediaItem, error)
}

// Assistant is the conversational collaborator. It has no report state.
type Assistant interface {
	Reply(ctx context.Context, messages []ChatMessage) (string, error)
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
