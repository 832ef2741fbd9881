package domain

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
)

// Report identifiers are short random hex tokens with a fixed prefix that
// keeps them distinguishable from other entity ids in the same namespace
// (e.g. "rep_98a21f3c").
const (
	reportIDPrefix   = "rep_"
	reportIDHexBytes = 4
)

var reportIDPattern = regexp.MustCompile(`^rep_[0-9a-f]{8}$`)

// NewReportID generates a fresh report identifier. Collisions are possible
// in principle; the caller is expected to retry against the store's
// uniqueness constraint.
func NewReportID() string {
	buf := make([]byte, reportIDHexBytes)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return reportIDPrefix + hex.EncodeToString(buf)
}

// ValidReportID reports whether s matches the generated identifier format.
func ValidReportID(s string) bool { return reportIDPattern.MatchString(s) }
