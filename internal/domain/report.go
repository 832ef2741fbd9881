package domain

import "time"

// Category is the closed set of report categories.
type Category string

const (
	CategoryAcoso                Category = "acoso"
	CategoryPreciosAbusivos      Category = "precios_abusivos"
	CategoryMalaAtencion         Category = "mala_atencion"
	CategoryProductosDefectuosos Category = "productos_defectuosos"
	CategoryPublicidadEnganosa   Category = "publicidad_enganosa"
	CategoryFaltaHigiene         Category = "falta_higiene"
	CategoryOtros                Category = "otros"
)

var categories = map[Category]bool{
	CategoryAcoso:                true,
	CategoryPreciosAbusivos:      true,
	CategoryMalaAtencion:         true,
	CategoryProductosDefectuosos: true,
	CategoryPublicidadEnganosa:   true,
	CategoryFaltaHigiene:         true,
	CategoryOtros:                true,
}

func (c Category) Valid() bool { return categories[c] }

// Status is a report's lifecycle state.
type Status string

const (
	StatusPending  Status = "pending"
	StatusInReview Status = "in_review"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusResolved Status = "resolved"
)

// transitions is the permitted edge table. States absent from the map
// (approved, rejected, resolved aside from the resolved edge) are terminal.
var transitions = map[Status][]Status{
	StatusPending:  {StatusInReview},
	StatusInReview: {StatusApproved, StatusRejected},
	StatusApproved: {StatusResolved},
	StatusRejected: {StatusResolved},
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInReview, StatusApproved, StatusRejected, StatusResolved:
		return true
	}
	return false
}

// CanTransition reports whether from → to is a permitted edge. A same-state
// transition is accepted idempotently.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// MediaType discriminates externally hosted media references.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

func (m MediaType) Valid() bool { return m == MediaImage || m == MediaVideo }

// MediaItem points at an already-hosted file; the core stores it verbatim.
type MediaItem struct {
	Type MediaType `json:"type"`
	URL  string    `json:"url"`
}

// LocationPoint is a GeoJSON Point, coordinates ordered [longitude, latitude].
type LocationPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

func NewLocationPoint(lng, lat float64) LocationPoint {
	return LocationPoint{Type: "Point", Coordinates: []float64{lng, lat}}
}

// Report is the central entity: a single submitted incident record.
type Report struct {
	ID               string        `json:"_id"`
	AnonymousUserID  string        `json:"anonymousUserId"`
	Category         Category      `json:"category"`
	Description      string        `json:"description"`
	Location         LocationPoint `json:"location"`
	AddressReference string        `json:"addressReference"`
	Media            []MediaItem   `json:"media"`
	Status           Status        `json:"status"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}
