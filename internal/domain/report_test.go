package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() NewReportInput {
	return NewReportInput{
		AnonymousUserID:  "anon_7f93a2c1",
		Category:         CategoryAcoso,
		Description:      "Comentarios inapropiados reiterados",
		Location:         NewLocationPoint(-78.4678, -0.1807),
		AddressReference: "Sector La Mariscal, Quito",
	}
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()

	require.NoError(t, validInput().Validate())
}

func TestValidate_FieldBounds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*NewReportInput)
		field  string
	}{
		{"empty anonymous id", func(in *NewReportInput) { in.AnonymousUserID = "  " }, "anonymousUserId"},
		{"unknown category", func(in *NewReportInput) { in.Category = "vandalismo" }, "category"},
		{"description too short", func(in *NewReportInput) { in.Description = "corto" }, "description"},
		{"description too long", func(in *NewReportInput) { in.Description = strings.Repeat("a", 1001) }, "description"},
		{"address too short", func(in *NewReportInput) { in.AddressReference = "Qto" }, "addressReference"},
		{"address too long", func(in *NewReportInput) { in.AddressReference = strings.Repeat("b", 201) }, "addressReference"},
		{"wrong location type", func(in *NewReportInput) { in.Location.Type = "Polygon" }, "location"},
		{"one coordinate", func(in *NewReportInput) { in.Location.Coordinates = []float64{-78.4} }, "location"},
		{"longitude out of range", func(in *NewReportInput) { in.Location.Coordinates = []float64{-190, 0} }, "location"},
		{"latitude out of range", func(in *NewReportInput) { in.Location.Coordinates = []float64{0, 95} }, "location"},
		{"bad media type", func(in *NewReportInput) {
			in.Media = []MediaItem{{Type: "audio", URL: "https://cdn.example.com/a.mp3"}}
		}, "media"},
		{"empty media url", func(in *NewReportInput) {
			in.Media = []MediaItem{{Type: MediaImage, URL: " "}}
		}, "media"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			in := validInput()
			tc.mutate(&in)
			err := in.Validate()
			require.Error(t, err)
			ve, ok := AsValidation(err)
			require.True(t, ok)
			assert.Contains(t, ve.Fields, tc.field)
		})
	}
}

func TestValidate_CollectsAllFields(t *testing.T) {
	t.Parallel()

	in := validInput()
	in.Description = "corto"
	in.Category = "nope"
	err := in.Validate()
	ve, ok := AsValidation(err)
	require.True(t, ok)
	assert.Len(t, ve.Fields, 2)
}

func TestCanTransition(t *testing.T) {
	t.Parallel()

	allowed := []struct{ from, to Status }{
		{StatusPending, StatusInReview},
		{StatusInReview, StatusApproved},
		{StatusInReview, StatusRejected},
		{StatusApproved, StatusResolved},
		{StatusRejected, StatusResolved},
	}
	for _, edge := range allowed {
		assert.True(t, CanTransition(edge.from, edge.to), "%s -> %s should be allowed", edge.from, edge.to)
	}

	denied := []struct{ from, to Status }{
		{StatusPending, StatusApproved},
		{StatusPending, StatusRejected},
		{StatusPending, StatusResolved},
		{StatusInReview, StatusPending},
		{StatusInReview, StatusResolved},
		{StatusApproved, StatusRejected},
		{StatusResolved, StatusPending},
		{StatusResolved, StatusInReview},
		{StatusRejected, StatusApproved},
	}
	for _, edge := range denied {
		assert.False(t, CanTransition(edge.from, edge.to), "%s -> %s should be denied", edge.from, edge.to)
	}
}

func TestCanTransition_SameStateIdempotent(t *testing.T) {
	t.Parallel()

	for _, s := range []Status{StatusPending, StatusInReview, StatusApproved, StatusRejected, StatusResolved} {
		assert.True(t, CanTransition(s, s))
	}
}

func TestNewReportID_Format(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewReportID()
		require.True(t, ValidReportID(id), "unexpected id %q", id)
		assert.False(t, seen[id], "id %q generated twice", id)
		seen[id] = true
	}
}

func TestStatusValid(t *testing.T) {
	t.Parallel()

	assert.True(t, StatusInReview.Valid())
	assert.False(t, Status("archived").Valid())
	assert.True(t, Category("otros").Valid())
	assert.False(t, Category("").Valid())
}
