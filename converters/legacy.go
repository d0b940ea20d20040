package converters

import (
	"time"

	"github.com/Station-Manager/dateconv/temporal"
)

// Conversions to the legacy temporal.Date family.

func TimeToDate(t time.Time) (temporal.Date, error) { return temporal.DateOf(t), nil }

func CalendarToDate(c temporal.Calendrical) (temporal.Date, error) { return TimeToDate(c.Time()) }

func LocalDateToDate(d temporal.LocalDate) (temporal.Date, error) {
	t, err := LocalDateToTime(d)
	if err != nil {
		return temporal.Date{}, err
	}
	return TimeToDate(t)
}

func LocalDateTimeToDate(dt temporal.LocalDateTime) (temporal.Date, error) {
	t, err := LocalDateTimeToTime(dt)
	if err != nil {
		return temporal.Date{}, err
	}
	return TimeToDate(t)
}

func XMLGregorianCalendarToDate(x temporal.XMLGregorianCalendar) (temporal.Date, error) {
	t, err := XMLGregorianCalendarToTime(x)
	if err != nil {
		return temporal.Date{}, err
	}
	return TimeToDate(t)
}

func TimeToSQLDate(t time.Time) (temporal.SQLDate, error) { return temporal.SQLDateOf(t), nil }

func LocalDateToSQLDate(d temporal.LocalDate) (temporal.SQLDate, error) {
	t, err := LocalDateToTime(d)
	if err != nil {
		return temporal.SQLDate{}, err
	}
	return TimeToSQLDate(t)
}

func TimeToTimestamp(t time.Time) (temporal.Timestamp, error) { return temporal.TimestampOf(t), nil }

func LocalDateTimeToTimestamp(dt temporal.LocalDateTime) (temporal.Timestamp, error) {
	t, err := LocalDateTimeToTime(dt)
	if err != nil {
		return temporal.Timestamp{}, err
	}
	return TimeToTimestamp(t)
}

// DateToDate also serves SQLDate and Timestamp through their embedded Date.
func DateToDate(d temporal.Date) (temporal.Date, error) { return d, nil }

func DateToSQLDate(d temporal.Date) (temporal.SQLDate, error) { return TimeToSQLDate(d.Time()) }

func CalendarToSQLDate(c temporal.Calendrical) (temporal.SQLDate, error) {
	return TimeToSQLDate(c.Time())
}

func LocalDateTimeToSQLDate(dt temporal.LocalDateTime) (temporal.SQLDate, error) {
	t, err := LocalDateTimeToTime(dt)
	if err != nil {
		return temporal.SQLDate{}, err
	}
	return TimeToSQLDate(t)
}

func XMLGregorianCalendarToSQLDate(x temporal.XMLGregorianCalendar) (temporal.SQLDate, error) {
	t, err := XMLGregorianCalendarToTime(x)
	if err != nil {
		return temporal.SQLDate{}, err
	}
	return TimeToSQLDate(t)
}

// DateToTimestamp also serves SQLDate, which resolves through Date.
func DateToTimestamp(d temporal.Date) (temporal.Timestamp, error) { return TimeToTimestamp(d.Time()) }

func TimestampToTimestamp(ts temporal.Timestamp) (temporal.Timestamp, error) { return ts, nil }

func CalendarToTimestamp(c temporal.Calendrical) (temporal.Timestamp, error) {
	return TimeToTimestamp(c.Time())
}

func LocalDateToTimestamp(d temporal.LocalDate) (temporal.Timestamp, error) {
	t, err := LocalDateToTime(d)
	if err != nil {
		return temporal.Timestamp{}, err
	}
	return TimeToTimestamp(t)
}

func XMLGregorianCalendarToTimestamp(x temporal.XMLGregorianCalendar) (temporal.Timestamp, error) {
	t, err := XMLGregorianCalendarToTime(x)
	if err != nil {
		return temporal.Timestamp{}, err
	}
	return TimeToTimestamp(t)
}
