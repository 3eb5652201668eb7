package domain

// Default configuration values
const (
	DefaultMaxDateLoopCap  = 1000
	DefaultReservationQty  = 1
	DefaultSelectionMode   = ResourceSelectionSingle
	DefaultHolidayCacheTTL = 3600 // seconds
)

// Business validation constants
const (
	MaxAdvanceBookingHours = 8760 // 1 year
	MaxBookableDaysLimit   = 3650
	MaxFixedBlockDays      = 365
	MaxResourcesPerProduct = 100
	MaxReservationQty      = 100
	MaxRequestRangeDays    = 366
	MaxLoopCap             = 100000
)
