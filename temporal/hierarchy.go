package temporal

import (
	"reflect"

	"github.com/Station-Manager/dateconv"
	"github.com/Station-Manager/errors"
)

// hierarchy lists [child, parent] pairs, most specific child first.
var hierarchy = [][2]reflect.Type{
	{dateconv.TypeOf[GregorianCalendar](), dateconv.TypeOf[Calendar]()},
	{dateconv.TypeOf[BuddhistCalendar](), dateconv.TypeOf[Calendar]()},
	{dateconv.TypeOf[SQLDate](), dateconv.TypeOf[Date]()},
	{dateconv.TypeOf[Timestamp](), dateconv.TypeOf[Date]()},
}

// DeclareHierarchy declares the supertypes of the calendar and legacy date families.
func DeclareHierarchy(r dateconv.SubtypeDeclarer) error {
	const op errors.Op = "temporal.DeclareHierarchy"
	for _, pair := range hierarchy {
		if err := r.DeclareSubtype(pair[0], pair[1]); err != nil {
			return errors.New(op).Err(err)
		}
	}
	return nil
}
