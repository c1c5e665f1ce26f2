// Package recur expands a recurrence rule into the dates of its occurrences.
package recur

import (
	"errors"
	"fmt"
	"time"
)

// Layout is the day/month/year hour-minute form accepted on the command line.
const Layout = "02/01/2006 1504"

// MaxCount caps the occurrences a single rule may produce.
const MaxCount = 1000

var ErrInvalidRule = errors.New("invalid recurrence rule")

// Rule repeats every IntervalDays days, Count times, after Start.
type Rule struct {
	Start        time.Time
	IntervalDays int
	Count        int
}

func (r Rule) Validate() error {
	if r.IntervalDays <= 0 {
		return fmt.Errorf("%w: interval must be positive, got %d", ErrInvalidRule, r.IntervalDays)
	}
	if r.Count < 0 || r.Count > MaxCount {
		return fmt.Errorf("%w: count must be between 0 and %d, got %d", ErrInvalidRule, MaxCount, r.Count)
	}
	return nil
}

// Expand returns the occurrence dates. The start itself is not an
// occurrence: the first one falls one interval after it.
func (r Rule) Expand() ([]time.Time, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	var out []time.Time
	d := r.Start
	for i := 0; i < r.Count; i++ {
		d = d.AddDate(0, 0, r.IntervalDays)
		out = append(out, d)
	}
	return out, nil
}

func ParseStart(s string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse start %q: %w", s, err)
	}
	return t, nil
}

func Format(t time.Time) string { return t.Format(Layout) }
