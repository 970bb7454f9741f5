package domain

// Stay is the half-open interval [CheckIn, CheckOut).
type Stay struct {
	CheckIn  Date
	CheckOut Date
}

// ParseStay requires both dates and a check-out strictly after check-in.
func ParseStay(checkIn, checkOut string) (Stay, error) {
	if checkIn == "" || checkOut == "" {
		return Stay{}, NewValidationError("check-in and check-out dates are required")
	}
	in, err := ParseDate(checkIn)
	if err != nil {
		return Stay{}, NewValidationError("invalid check-in date %q, expected YYYY-MM-DD", checkIn)
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return Stay{}, NewValidationError("invalid check-out date %q, expected YYYY-MM-DD", checkOut)
	}
	if !out.After(in) {
		return Stay{}, NewValidationError("check-out date must be after check-in date")
	}
	return Stay{CheckIn: in, CheckOut: out}, nil
}

func (s Stay) Nights() int {
	return s.CheckIn.DaysUntil(s.CheckOut)
}

// Overlaps reports whether two stays share at least one night. Stays that
// only touch (one ends the day the other starts) do not overlap.
func (s Stay) Overlaps(o Stay) bool {
	return s.CheckIn.Before(o.CheckOut) && o.CheckIn.Before(s.CheckOut)
}
