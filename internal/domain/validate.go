package domain

import "strings"

const (
	descriptionMin = 10
	descriptionMax = 1000
	addressRefMin  = 5
	addressRefMax  = 200
)

// NewReportInput is the payload accepted by report creation, before any
// identifier or timestamp has been assigned.
type NewReportInput struct {
	AnonymousUserID  string
	Category         Category
	Description      string
	Location         LocationPoint
	AddressReference string
	Media            []MediaItem
}

// Validate checks every bound and enumeration on the input and collects all
// failures into one ValidationError instead of stopping at the first.
func (in NewReportInput) Validate() error {
	fields := map[string]string{}

	if strings.TrimSpace(in.AnonymousUserID) == "" {
		fields["anonymousUserId"] = "must not be empty"
	}
	if !in.Category.Valid() {
		fields["category"] = "unknown category"
	}
	if n := len([]rune(in.Description)); n < descriptionMin || n > descriptionMax {
		fields["description"] = "length must be between 10 and 1000 characters"
	}
	if n := len([]rune(in.AddressReference)); n < addressRefMin || n > addressRefMax {
		fields["addressReference"] = "length must be between 5 and 200 characters"
	}
	if reason := validateLocation(in.Location); reason != "" {
		fields["location"] = reason
	}
	for _, m := range in.Media {
		if !m.Type.Valid() {
			fields["media"] = "media type must be image or video"
			break
		}
		if strings.TrimSpace(m.URL) == "" {
			fields["media"] = "media url must not be empty"
			break
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validateLocation(loc LocationPoint) string {
	if loc.Type != "Point" {
		return `type must be "Point"`
	}
	if len(loc.Coordinates) != 2 {
		return "coordinates must be [longitude, latitude]"
	}
	lng, lat := loc.Coordinates[0], loc.Coordinates[1]
	if lng < -180 || lng > 180 {
		return "longitude out of range"
	}
	if lat < -90 || lat > 90 {
		return "latitude out of range"
	}
	return ""
}
