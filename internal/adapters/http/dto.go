package httpadapter

import (
	"time"

	"securereport/internal/domain"
)

// Hand-written request/response shapes; the mapping between wire JSON and
// domain records is explicit so malformed payloads fail at this boundary.

type locationDTO struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

type mediaDTO struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type createReportRequest struct {
	AnonymousUserID  string      `json:"anonymousUserId"`
	Category         string      `json:"category"`
	Description      string      `json:"description"`
	Location         locationDTO `json:"location"`
	AddressReference string      `json:"addressReference"`
	Media            []mediaDTO  `json:"media"`
}

func (r createReportRequest) toInput() domain.NewReportInput {
	media := make([]domain.MediaItem, 0, len(r.Media))
	for _, m := range r.Media {
		media = append(media, domain.MediaItem{Type: domain.MediaType(m.Type), URL: m.URL})
	}
	return domain.NewReportInput{
		AnonymousUserID:  r.AnonymousUserID,
		Category:         domain.Category(r.Category),
		Description:      r.Description,
		Location:         domain.LocationPoint{Type: r.Location.Type, Coordinates: r.Location.Coordinates},
		AddressReference: r.AddressReference,
		Media:            media,
	}
}

type reportResponse struct {
	ID               string      `json:"_id"`
	AnonymousUserID  string      `json:"anonymousUserId"`
	Category         string      `json:"category"`
	Description      string      `json:"description"`
	Location         locationDTO `json:"location"`
	AddressReference string      `json:"addressReference"`
	Media            []mediaDTO  `json:"media"`
	Status           string      `json:"status"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

func toReportResponse(r *domain.Report) reportResponse {
	media := make([]mediaDTO, 0, len(r.Media))
	for _, m := range r.Media {
		media = append(media, mediaDTO{Type: string(m.Type), URL: m.URL})
	}
	return reportResponse{
		ID:               r.ID,
		AnonymousUserID:  r.AnonymousUserID,
		Category:         string(r.Category),
		Description:      r.Description,
		Location:         locationDTO{Type: r.Location.Type, Coordinates: r.Location.Coordinates},
		AddressReference: r.AddressReference,
		Media:            media,
		Status:           string(r.Status),
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func toReportList(reports []domain.Report) []reportResponse {
	out := make([]reportResponse, 0, len(reports))
	for i := range reports {
		out = append(out, toReportResponse(&reports[i]))
	}
	return out
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
