package temporal

import (
	"fmt"
	"strings"
	"time"

	"github.com/Station-Manager/errors"
)

var (
	xmlZonedLayouts   = []string{"2006-01-02T15:04:05.999999999Z07:00", "2006-01-02Z07:00"}
	xmlUnzonedLayouts = []string{"2006-01-02T15:04:05.999999999", "2006-01-02"}
)

// XMLGregorianCalendar holds the fields of an xsd:dateTime (or xsd:date)
// value. The timezone is optional; OffsetMinutes is meaningful only when Zoned.
type XMLGregorianCalendar struct {
	Year          int
	Month         time.Month
	Day           int
	Hour          int
	Minute        int
	Second        int
	Nanosecond    int
	Zoned         bool
	OffsetMinutes int
}

// XMLGregorianCalendarOf returns the fields of t with t's UTC offset. The
// lexical form only carries whole minutes, so a zone offset with seconds
// (local mean time zones) is truncated toward zero and the wall clock kept.
func XMLGregorianCalendarOf(t time.Time) XMLGregorianCalendar {
	_, offset := t.Zone()
	dt := LocalDateTimeOf(t)
	return XMLGregorianCalendar{
		Year: dt.Year, Month: dt.Month, Day: dt.Day,
		Hour: dt.Hour, Minute: dt.Minute, Second: dt.Second, Nanosecond: dt.Nanosecond,
		Zoned: true, OffsetMinutes: offset / 60,
	}
}

// ParseXMLGregorianCalendar parses the lexical xsd:dateTime or xsd:date form.
func ParseXMLGregorianCalendar(s string) (XMLGregorianCalendar, error) {
	const op errors.Op = "temporal.ParseXMLGregorianCalendar"
	s = strings.TrimSpace(s)
	for _, layout := range xmlZonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return XMLGregorianCalendarOf(t), nil
		}
	}
	for _, layout := range xmlUnzonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			x := XMLGregorianCalendarOf(t)
			x.Zoned, x.OffsetMinutes = false, 0
			return x, nil
		}
	}
	return XMLGregorianCalendar{}, errors.New(op).Errorf("%s: %q", ErrMsgBadXMLFormat, s)
}

// Validate reports fields that do not name a real instant.
func (x XMLGregorianCalendar) Validate() error {
	const op errors.Op = "temporal.XMLGregorianCalendar.Validate"
	if x.Zoned && (x.OffsetMinutes < -14*60 || x.OffsetMinutes > 14*60) {
		return errors.New(op).Errorf("%s: offset %d minutes", ErrMsgFieldOutOfRange, x.OffsetMinutes)
	}
	if x.Nanosecond < 0 || x.Nanosecond > 999999999 {
		return errors.New(op).Errorf("%s: nanosecond %d", ErrMsgFieldOutOfRange, x.Nanosecond)
	}
	if !x.local().IsValid() {
		return errors.New(op).Errorf("%s: %s", ErrMsgFieldOutOfRange, x.local())
	}
	return nil
}

// Location returns the fixed zone of x, or def when x carries no zone.
func (x XMLGregorianCalendar) Location(def *time.Location) *time.Location {
	if !x.Zoned {
		return def
	}
	if x.OffsetMinutes == 0 {
		return time.UTC
	}
	return time.FixedZone("", x.OffsetMinutes*60)
}

// ToTime places x in its own zone, or in def when x carries no zone.
func (x XMLGregorianCalendar) ToTime(def *time.Location) time.Time {
	return x.local().In(x.Location(def))
}

func (x XMLGregorianCalendar) local() LocalDateTime {
	return LocalDateTime{Year: x.Year, Month: x.Month, Day: x.Day, Hour: x.Hour, Minute: x.Minute, Second: x.Second, Nanosecond: x.Nanosecond}
}

func (x XMLGregorianCalendar) String() string {
	s := x.local().String()
	if !x.Zoned {
		return s
	}
	if x.OffsetMinutes == 0 {
		return s + "Z"
	}
	sign, off := '+', x.OffsetMinutes
	if off < 0 {
		sign, off = '-', -off
	}
	return fmt.Sprintf("%s%c%02d:%02d", s, sign, off/60, off%60)
}
