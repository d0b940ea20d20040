package converters

import (
	"time"

	"github.com/Station-Manager/dateconv/temporal"
	"github.com/aarondl/null/v8"
)

// TimeToNullTime converts a time.Time to a model null.Time. The zero time is stored as null.
func TimeToNullTime(t time.Time) (null.Time, error) {
	if t.IsZero() {
		return null.Time{}, nil
	}
	return null.TimeFrom(t), nil
}

func CalendarToNullTime(c temporal.Calendrical) (null.Time, error) { return TimeToNullTime(c.Time()) }

func NullTimeToNullTime(nt null.Time) (null.Time, error) { return nt, nil }

func LocalDateToNullTime(d temporal.LocalDate) (null.Time, error) {
	t, err := LocalDateToTime(d)
	if err != nil {
		return null.Time{}, err
	}
	return TimeToNullTime(t)
}

func LocalDateTimeToNullTime(dt temporal.LocalDateTime) (null.Time, error) {
	t, err := LocalDateTimeToTime(dt)
	if err != nil {
		return null.Time{}, err
	}
	return TimeToNullTime(t)
}

// DateToNullTime also serves SQLDate, which resolves through Date.
func DateToNullTime(d temporal.Date) (null.Time, error) { return TimeToNullTime(d.Time()) }

func TimestampToNullTime(ts temporal.Timestamp) (null.Time, error) { return TimeToNullTime(ts.Time()) }

func XMLGregorianCalendarToNullTime(x temporal.XMLGregorianCalendar) (null.Time, error) {
	t, err := XMLGregorianCalendarToTime(x)
	if err != nil {
		return null.Time{}, err
	}
	return TimeToNullTime(t)
}
