package domain

import (
	"encoding/json"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar day with no time component, always held at UTC midnight.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf drops the clock part of t, keeping the calendar day as seen in t's
// location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string { return d.Format(DateLayout) }

func (d Date) Before(o Date) bool { return d.Time.Before(o.Time) }

func (d Date) After(o Date) bool { return d.Time.After(o.Time) }

// DaysUntil returns the number of nights between d and o.
func (d Date) DaysUntil(o Date) int {
	return int(o.Sub(d.Time).Hours() / 24)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
