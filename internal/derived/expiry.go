// Package derived computes display state from fetched lists: expiry status of
// stock, aggregate counters, and the search/filter views the pages show.
// Every function is pure and never mutates its input.
package derived

import (
	"fmt"
	"time"

	"github.com/erazemk/bloodbank/internal/model"
)

const day = 24 * time.Hour

// DaysUntilExpiry returns the number of whole days from the calendar date of
// now (in now's location) to d. Time of day never affects the result.
//
// An invalid date has no day count; ok is false.
func DaysUntilExpiry(d model.Date, now time.Time) (days int, ok bool) {
	if !d.Valid() {
		return 0, false
	}
	today := model.DateOf(now)
	return int(d.Time().Sub(today.Time()) / day), true
}

// ExpiryStatus classifies d relative to now. Exactly 0 and exactly
// ExpiringWindowDays days remaining are both expiring. An invalid date
// compares false against every bound and so ends up available.
func ExpiryStatus(d model.Date, now time.Time) model.ExpiryStatus {
	days, ok := DaysUntilExpiry(d, now)
	switch {
	case ok && days < 0:
		return model.StatusExpired
	case ok && days <= model.ExpiringWindowDays:
		return model.StatusExpiring
	default:
		return model.StatusAvailable
	}
}

// ParseStatusFilter validates a status filter selection.
func ParseStatusFilter(s string) (model.StatusFilter, error) {
	switch f := model.StatusFilter(s); f {
	case model.FilterAll,
		model.StatusFilter(model.StatusAvailable),
		model.StatusFilter(model.StatusExpiring),
		model.StatusFilter(model.StatusExpired):
		return f, nil
	}
	return "", &model.ValidationError{Field: "status", Message: fmt.Sprintf("unknown status filter %q", s)}
}
