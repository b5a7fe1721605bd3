package models

// User roles.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// Fine payment statuses.
const (
	FineStatusUnpaid = "UNPAID"
	FineStatusPaid   = "PAID"
)

// CategoryAutomatic marks fine types created and maintained by the
// automatic fine jobs rather than the catalog.
const CategoryAutomatic = "Automatisk"
