// Package temporal holds the date/time representations interconverted by the
// dateconv registry: local dates and date-times, calendars and their
// subtypes, legacy epoch-based dates and an XML Schema dateTime form.
// The zoned representation is time.Time itself.
package temporal
