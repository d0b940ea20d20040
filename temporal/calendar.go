package temporal

import "time"

// Calendrical is implemented by Calendar and by every type embedding it.
type Calendrical interface {
	Time() time.Time
	Location() *time.Location
}

// Calendar is an instant paired with the zone its fields are read in.
type Calendar struct {
	instant time.Time
}

func NewCalendar(t time.Time) Calendar { return Calendar{instant: t} }

func (c Calendar) Time() time.Time { return c.instant }

func (c Calendar) Location() *time.Location { return c.instant.Location() }

func (c Calendar) IsZero() bool { return c.instant.IsZero() }

// GregorianCalendar is the Calendar in the proleptic Gregorian system.
type GregorianCalendar struct {
	Calendar
}

func NewGregorianCalendar(t time.Time) GregorianCalendar {
	return GregorianCalendar{Calendar: NewCalendar(t)}
}

// BuddhistCalendar reads years in the Buddhist era. No converter targets it
// directly; conversions from it resolve through Calendar.
type BuddhistCalendar struct {
	Calendar
}

func NewBuddhistCalendar(t time.Time) BuddhistCalendar {
	return BuddhistCalendar{Calendar: NewCalendar(t)}
}

// Year returns the Buddhist era year.
func (c BuddhistCalendar) Year() int { return c.Time().Year() + BuddhistEraOffset }
