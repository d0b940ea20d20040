package temporal

const (
	ErrMsgBadDateFormat     = "Bad date format, expected YYYY-MM-DD"
	ErrMsgBadDateTimeFormat = "Bad date-time format, expected YYYY-MM-DDTHH:MM:SS"
	ErrMsgBadXMLFormat      = "Bad xsd:dateTime format, expected YYYY-MM-DD[THH:MM:SS[.fraction]][Z|+HH:MM]"
	ErrMsgFieldOutOfRange   = "Calendar field out of range"
)

// BuddhistEraOffset is the difference between Buddhist era and Gregorian years.
const BuddhistEraOffset = 543
