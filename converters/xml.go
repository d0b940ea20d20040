package converters

import (
	"time"

	"github.com/Station-Manager/dateconv/temporal"
	"github.com/Station-Manager/errors"
)

func TimeToXMLGregorianCalendar(t time.Time) (temporal.XMLGregorianCalendar, error) {
	return temporal.XMLGregorianCalendarOf(t), nil
}

func CalendarToXMLGregorianCalendar(c temporal.Calendrical) (temporal.XMLGregorianCalendar, error) {
	return TimeToXMLGregorianCalendar(c.Time())
}

func DateToXMLGregorianCalendar(d temporal.Date) (temporal.XMLGregorianCalendar, error) {
	return TimeToXMLGregorianCalendar(d.Time())
}

// TimestampToXMLGregorianCalendar keeps the nanosecond fraction.
func TimestampToXMLGregorianCalendar(ts temporal.Timestamp) (temporal.XMLGregorianCalendar, error) {
	return TimeToXMLGregorianCalendar(ts.Time())
}

// LocalDateToXMLGregorianCalendar yields a zone-less calendar at midnight.
func LocalDateToXMLGregorianCalendar(d temporal.LocalDate) (temporal.XMLGregorianCalendar, error) {
	const op errors.Op = "converters.LocalDateToXMLGregorianCalendar"
	if err := CheckLocalDate(op, d); err != nil {
		return temporal.XMLGregorianCalendar{}, err
	}
	return LocalDateTimeToXMLGregorianCalendar(d.AtStartOfDay())
}

// LocalDateTimeToXMLGregorianCalendar yields a zone-less calendar.
func LocalDateTimeToXMLGregorianCalendar(dt temporal.LocalDateTime) (temporal.XMLGregorianCalendar, error) {
	const op errors.Op = "converters.LocalDateTimeToXMLGregorianCalendar"
	if err := CheckLocalDateTime(op, dt); err != nil {
		return temporal.XMLGregorianCalendar{}, err
	}
	return temporal.XMLGregorianCalendar{
		Year: dt.Year, Month: dt.Month, Day: dt.Day,
		Hour: dt.Hour, Minute: dt.Minute, Second: dt.Second, Nanosecond: dt.Nanosecond,
	}, nil
}

func XMLGregorianCalendarToXMLGregorianCalendar(x temporal.XMLGregorianCalendar) (temporal.XMLGregorianCalendar, error) {
	return x, nil
}
