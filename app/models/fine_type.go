package models

import "time"

// FineType is a named violation category with a default amount.
// Name uniqueness is enforced at the application level.
type FineType struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid" validate:"required,uuid"`
	Name        string    `json:"name" gorm:"not null" validate:"required"`
	Amount      int       `json:"amount" gorm:"not null" validate:"gte=0"`
	Description string    `json:"description" gorm:"type:text"`
	Category    string    `json:"category" gorm:"not null;default:'Generelt'"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
	Fines       []*Fine   `json:"fines,omitempty" gorm:"foreignKey:FineTypeID;references:ID"`

	// FineCount is filled by queries that join usage; not a column.
	FineCount int `json:"fineCount" gorm:"-"`
}

// IsAutomatic reports whether the type is owned by the job engine.
// Automatic types are exempt from catalog-driven pruning.
func (ft *FineType) IsAutomatic() bool {
	return ft.Category == CategoryAutomatic
}
