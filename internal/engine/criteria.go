package engine

import (
	"time"

	sifterrors "github.com/livp123/logsift/pkg/errors"
)

// BoundaryDateLayout is the dd.MM.yyyy layout taken at the CLI boundary.
const BoundaryDateLayout = "02.01.2006"

// Criteria restricts the report to an address range and a time window.
//
// AddressMask is the inclusive upper bound of the address range despite its
// name; it is an ordinal string bound, not a bitmask or CIDR prefix. The
// name is kept for compatibility with the existing option surface. With the
// empty-string default an unset mask admits only the empty address, so any
// non-empty address is filtered out; that is existing behavior and is
// deliberately not corrected here.
type Criteria struct {
	AddressStart string
	AddressMask  string
	TimeStart    time.Time
	TimeEnd      time.Time
}

// NewCriteria builds a Criteria from boundary-level option values. Both
// date bounds are required, in dd.MM.yyyy form; timeStart marks the start
// of its day and timeEnd is inclusive of its whole day.
func NewCriteria(addressStart, addressMask, timeStart, timeEnd string) (Criteria, error) {
	if timeStart == "" {
		return Criteria{}, sifterrors.NewMissingBoundError("time-start")
	}
	if timeEnd == "" {
		return Criteria{}, sifterrors.NewMissingBoundError("time-end")
	}

	start, err := time.Parse(BoundaryDateLayout, timeStart)
	if err != nil {
		return Criteria{}, sifterrors.NewTimeBoundError("time-start", timeStart, err)
	}
	end, err := time.Parse(BoundaryDateLayout, timeEnd)
	if err != nil {
		return Criteria{}, sifterrors.NewTimeBoundError("time-end", timeEnd, err)
	}

	// Inclusive upper bound: the whole named day is inside the window.
	end = end.Add(24*time.Hour - time.Second)

	if start.After(end) {
		return Criteria{}, sifterrors.NewTimeRangeError(timeStart, timeEnd)
	}

	return Criteria{
		AddressStart: addressStart,
		AddressMask:  addressMask,
		TimeStart:    start,
		TimeEnd:      end,
	}, nil
}

// InAddressRange reports whether the address falls inside the inclusive
// ordinal range [AddressStart, AddressMask].
func (c Criteria) InAddressRange(address string) bool {
	return address >= c.AddressStart && address <= c.AddressMask
}

// InWindow reports whether t falls inside the inclusive window
// [TimeStart, TimeEnd]. A zero-valued bound acts as unbounded; that is a
// defensive fallback only, the boundary layer validates both bounds before
// the core runs.
func (c Criteria) InWindow(t time.Time) bool {
	if !c.TimeStart.IsZero() && t.Before(c.TimeStart) {
		return false
	}
	if !c.TimeEnd.IsZero() && t.After(c.TimeEnd) {
		return false
	}
	return true
}
