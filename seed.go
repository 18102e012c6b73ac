package mathsheet

import (
	"fmt"
	"math/rand/v2"
)

// Worksheet ID bounds for generated IDs. User-supplied IDs may be any
// positive integer.
const (
	MinWorksheetID int64 = 100000
	MaxWorksheetID int64 = 999999
)

// ResolveSeed returns the worksheet ID to use.
// A non-nil user value is returned unchanged. Otherwise an ID is drawn
// uniformly from [MinWorksheetID, MaxWorksheetID]; draw must return a value
// in [0, n) and defaults to math/rand/v2.
func ResolveSeed(user *int64, draw func(n int64) int64) int64 {
	if user != nil {
		return *user
	}
	if draw == nil {
		draw = rand.Int64N
	}
	return MinWorksheetID + draw(MaxWorksheetID-MinWorksheetID+1)
}

// ValidateSeed rejects IDs that are not positive.
func ValidateSeed(seed int64) error {
	if seed <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSeed, seed)
	}
	return nil
}
