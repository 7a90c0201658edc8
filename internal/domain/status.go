package domain

import "strings"

// StatusSet is an allow-list of status values for one resource type.
// Write paths validate against it; read-path filters never do (an
// unknown status filter simply matches zero rows).
type StatusSet []string

var (
	TripStatuses    = StatusSet{"en_route", "ongoing", "on_trip", "to_pickup", "to_dropoff", "completed", "cancelled"}
	VehicleStatuses = StatusSet{"available", "on_trip", "charging", "offline"}
	RefundStatuses  = StatusSet{"pending", "approved", "rejected", "on_hold", "cancelled"}
)

func (s StatusSet) Contains(v string) bool {
	for _, allowed := range s {
		if allowed == v {
			return true
		}
	}
	return false
}

// ValidateStatus is the single enum check shared by all update paths.
func ValidateStatus(set StatusSet, v string) error {
	if !set.Contains(v) {
		return ValidationError{Field: "status", Msg: "invalid status value: " + v}
	}
	return nil
}

func (s StatusSet) String() string {
	return strings.Join(s, ", ")
}
