package converters

import (
	"time"

	"github.com/Station-Manager/dateconv/temporal"
	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
)

// Conversions to time.Time, the zoned representation. Zone-less sources are
// placed in UTC.

func CalendarToTime(c temporal.Calendrical) (time.Time, error) { return c.Time(), nil }

func LocalDateToTime(d temporal.LocalDate) (time.Time, error) {
	const op errors.Op = "converters.LocalDateToTime"
	if err := CheckLocalDate(op, d); err != nil {
		return time.Time{}, err
	}
	return d.In(time.UTC), nil
}

func LocalDateTimeToTime(dt temporal.LocalDateTime) (time.Time, error) {
	const op errors.Op = "converters.LocalDateTimeToTime"
	if err := CheckLocalDateTime(op, dt); err != nil {
		return time.Time{}, err
	}
	return dt.In(time.UTC), nil
}

func TimeToTime(t time.Time) (time.Time, error) { return t, nil }

// DateToTime also serves SQLDate, which resolves through Date.
func DateToTime(d temporal.Date) (time.Time, error) { return d.Time(), nil }

// TimestampToTime keeps the nanosecond fraction DateToTime would drop.
func TimestampToTime(ts temporal.Timestamp) (time.Time, error) { return ts.Time(), nil }

func XMLGregorianCalendarToTime(x temporal.XMLGregorianCalendar) (time.Time, error) {
	const op errors.Op = "converters.XMLGregorianCalendarToTime"
	if err := x.Validate(); err != nil {
		return time.Time{}, errors.New(op).Err(err)
	}
	return x.ToTime(time.UTC), nil
}

// NullTimeToTime returns the zero time for an invalid null.Time.
func NullTimeToTime(nt null.Time) (time.Time, error) {
	if !nt.Valid {
		return time.Time{}, nil
	}
	return nt.Time, nil
}
