package domain

// ServiceType identifies which slot catalog and price table a booking
// uses. Legacy bookings carry free-text package labels instead of one of
// these values; those fall back to the regular catalog.
type ServiceType string

const (
	ServiceRegular     ServiceType = "regular"
	ServiceTargetRange ServiceType = "target-range"
	ServiceGroup       ServiceType = "group"
	ServiceHalfDay     ServiceType = "half-day"
)

// NormalizeServiceType maps an arbitrary stored service string onto a
// catalog-bearing service type. Unknown and legacy labels resolve to
// regular.
func NormalizeServiceType(s string) ServiceType {
	switch ServiceType(s) {
	case ServiceRegular, ServiceTargetRange, ServiceGroup, ServiceHalfDay:
		return ServiceType(s)
	default:
		return ServiceRegular
	}
}

// IsKnownServiceType reports whether s is one of the closed service set.
func IsKnownServiceType(s string) bool {
	switch ServiceType(s) {
	case ServiceRegular, ServiceTargetRange, ServiceGroup, ServiceHalfDay:
		return true
	default:
		return false
	}
}

// UsesRangeCatalog reports whether the service books whole-field range
// slots (regular/group 2-hour or half-day spans). Range-catalog services
// conflict with each other whenever their minute ranges intersect; the
// target range is treated as a separate area and is exempt from the
// cross-check.
func (s ServiceType) UsesRangeCatalog() bool {
	return s != ServiceTargetRange
}
