package temporal

import (
	"fmt"
	"time"

	"github.com/Station-Manager/errors"
)

const (
	localDateLayout     = "2006-01-02"
	localDateTimeLayout = "2006-01-02T15:04:05.999999999"
)

// LocalDate is a calendar date without a time of day or zone.
type LocalDate struct {
	Year  int
	Month time.Month
	Day   int
}

// LocalDateOf returns the date of t in t's location.
func LocalDateOf(t time.Time) LocalDate {
	y, m, d := t.Date()
	return LocalDate{Year: y, Month: m, Day: d}
}

// ParseLocalDate parses a YYYY-MM-DD date.
func ParseLocalDate(s string) (LocalDate, error) {
	const op errors.Op = "temporal.ParseLocalDate"
	t, err := time.Parse(localDateLayout, s)
	if err != nil {
		return LocalDate{}, errors.New(op).Err(err).Msg(ErrMsgBadDateFormat)
	}
	return LocalDateOf(t), nil
}

func (d LocalDate) IsZero() bool { return d == LocalDate{} }

// IsValid reports whether d names a real calendar day.
func (d LocalDate) IsValid() bool { return LocalDateOf(d.In(time.UTC)) == d }

// In returns midnight of d in loc.
func (d LocalDate) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AtStartOfDay returns midnight of d.
func (d LocalDate) AtStartOfDay() LocalDateTime {
	return LocalDateTime{Year: d.Year, Month: d.Month, Day: d.Day}
}

func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// LocalDateTime is a date and wall-clock time without a zone.
type LocalDateTime struct {
	Year       int
	Month      time.Month
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// LocalDateTimeOf returns the wall-clock reading of t in t's location.
func LocalDateTimeOf(t time.Time) LocalDateTime {
	y, m, d := t.Date()
	return LocalDateTime{Year: y, Month: m, Day: d, Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(), Nanosecond: t.Nanosecond()}
}

// ParseLocalDateTime parses a YYYY-MM-DDTHH:MM:SS[.fraction] date-time.
func ParseLocalDateTime(s string) (LocalDateTime, error) {
	const op errors.Op = "temporal.ParseLocalDateTime"
	t, err := time.Parse(localDateTimeLayout, s)
	if err != nil {
		return LocalDateTime{}, errors.New(op).Err(err).Msg(ErrMsgBadDateTimeFormat)
	}
	return LocalDateTimeOf(t), nil
}

func (dt LocalDateTime) IsZero() bool { return dt == LocalDateTime{} }

// IsValid reports whether every field of dt is in range.
func (dt LocalDateTime) IsValid() bool { return LocalDateTimeOf(dt.In(time.UTC)) == dt }

// Date returns the date part of dt.
func (dt LocalDateTime) Date() LocalDate {
	return LocalDate{Year: dt.Year, Month: dt.Month, Day: dt.Day}
}

// In places dt in loc.
func (dt LocalDateTime) In(loc *time.Location) time.Time {
	return time.Date(dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second, dt.Nanosecond, loc)
}

func (dt LocalDateTime) String() string { return dt.In(time.UTC).Format(localDateTimeLayout) }
