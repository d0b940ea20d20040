package converters

import (
	"reflect"

	"github.com/Station-Manager/dateconv"
	"github.com/Station-Manager/dateconv/temporal"
	"github.com/Station-Manager/errors"
)

// Registrar is satisfied by *dateconv.Registry and *dateconv.Builder.
type Registrar interface {
	dateconv.Registrar
	dateconv.SubtypeDeclarer
}

// Register declares the temporal hierarchy and registers every converter in
// this package. Calendar converters are bound to both Calendar and
// GregorianCalendar; other calendar subtypes and the SQLDate subtype of Date
// resolve through their declared ancestors.
func Register(r Registrar) error {
	const op errors.Op = "converters.Register"
	if err := temporal.DeclareHierarchy(r); err != nil {
		return errors.New(op).Err(err)
	}
	calendars := []reflect.Type{dateconv.TypeOf[temporal.Calendar](), dateconv.TypeOf[temporal.GregorianCalendar]()}

	// -> temporal.Calendar
	dateconv.Register(r, CalendarToCalendar, calendars...)
	dateconv.Register(r, XMLGregorianCalendarToCalendar)
	dateconv.Register(r, LocalDateToCalendar)
	dateconv.Register(r, LocalDateTimeToCalendar)
	dateconv.Register(r, TimeToCalendar)
	dateconv.Register(r, DateToCalendar)
	dateconv.Register(r, TimestampToCalendar)

	// -> temporal.LocalDateTime
	dateconv.Register(r, XMLGregorianCalendarToLocalDateTime)
	dateconv.Register(r, LocalDateToLocalDateTime)
	dateconv.Register(r, TimeToLocalDateTime)
	dateconv.Register(r, LocalDateTimeToLocalDateTime)
	dateconv.Register(r, DateToLocalDateTime)
	dateconv.Register(r, TimestampToLocalDateTime)
	dateconv.Register(r, CalendarToLocalDateTime, calendars...)

	// -> temporal.LocalDate
	dateconv.Register(r, XMLGregorianCalendarToLocalDate)
	dateconv.Register(r, LocalDateToLocalDate)
	dateconv.Register(r, LocalDateTimeToLocalDate)
	dateconv.Register(r, TimeToLocalDate)
	dateconv.Register(r, DateToLocalDate)
	dateconv.Register(r, CalendarToLocalDate, calendars...)
	dateconv.Register(r, QsoToLocalDate)
	dateconv.Register(r, ModelQsoToLocalDate)

	// -> time.Time
	dateconv.Register(r, CalendarToTime, calendars...)
	dateconv.Register(r, LocalDateToTime)
	dateconv.Register(r, LocalDateTimeToTime)
	dateconv.Register(r, TimeToTime)
	dateconv.Register(r, DateToTime)
	dateconv.Register(r, TimestampToTime)
	dateconv.Register(r, XMLGregorianCalendarToTime)
	dateconv.Register(r, NullTimeToTime)
	dateconv.Register(r, QsoToTime)
	dateconv.Register(r, ModelQsoToTime)

	// -> legacy dates; DateTo* converters also serve SQLDate and Timestamp
	dateconv.Register(r, DateToDate)
	dateconv.Register(r, TimeToDate)
	dateconv.Register(r, CalendarToDate, calendars...)
	dateconv.Register(r, LocalDateToDate)
	dateconv.Register(r, LocalDateTimeToDate)
	dateconv.Register(r, XMLGregorianCalendarToDate)

	dateconv.Register(r, DateToSQLDate)
	dateconv.Register(r, TimeToSQLDate)
	dateconv.Register(r, CalendarToSQLDate, calendars...)
	dateconv.Register(r, LocalDateToSQLDate)
	dateconv.Register(r, LocalDateTimeToSQLDate)
	dateconv.Register(r, XMLGregorianCalendarToSQLDate)

	dateconv.Register(r, DateToTimestamp)
	dateconv.Register(r, TimestampToTimestamp)
	dateconv.Register(r, TimeToTimestamp)
	dateconv.Register(r, CalendarToTimestamp, calendars...)
	dateconv.Register(r, LocalDateToTimestamp)
	dateconv.Register(r, LocalDateTimeToTimestamp)
	dateconv.Register(r, XMLGregorianCalendarToTimestamp)

	// -> temporal.XMLGregorianCalendar
	dateconv.Register(r, TimeToXMLGregorianCalendar)
	dateconv.Register(r, CalendarToXMLGregorianCalendar, calendars...)
	dateconv.Register(r, DateToXMLGregorianCalendar)
	dateconv.Register(r, TimestampToXMLGregorianCalendar)
	dateconv.Register(r, LocalDateToXMLGregorianCalendar)
	dateconv.Register(r, LocalDateTimeToXMLGregorianCalendar)
	dateconv.Register(r, XMLGregorianCalendarToXMLGregorianCalendar)

	// -> null.Time
	dateconv.Register(r, TimeToNullTime)
	dateconv.Register(r, CalendarToNullTime, calendars...)
	dateconv.Register(r, LocalDateToNullTime)
	dateconv.Register(r, LocalDateTimeToNullTime)
	dateconv.Register(r, DateToNullTime)
	dateconv.Register(r, TimestampToNullTime)
	dateconv.Register(r, XMLGregorianCalendarToNullTime)
	dateconv.Register(r, NullTimeToNullTime)
	return nil
}

// NewRegistry returns a registry populated by Register.
func NewRegistry(opts ...dateconv.Option) (*dateconv.Registry, error) {
	b := dateconv.NewBuilder().WithOptions(opts...)
	if err := Register(b); err != nil {
		return nil, err
	}
	return b.Build()
}
