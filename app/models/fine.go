package models

import "time"

// Fine is one issued violation instance against a player.
// Amount is frozen at issuance time and may differ from the
// fine type's current default.
type Fine struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid"`
	PlayerID   string     `json:"playerId" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	FineTypeID string     `json:"fineTypeId" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Amount     int        `json:"amount" gorm:"not null" validate:"gte=0"`
	Reason     *string    `json:"reason,omitempty" gorm:"type:text"`
	Date       time.Time  `json:"date" gorm:"not null;index"`
	Status     string     `json:"status" gorm:"not null;default:'UNPAID'" validate:"oneof=UNPAID PAID"`
	PaidAt     *time.Time `json:"paidAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
	Player     *Player    `json:"player,omitempty" gorm:"foreignKey:PlayerID;references:ID"`
	FineType   *FineType  `json:"fineType,omitempty" gorm:"foreignKey:FineTypeID;references:ID"`
}

// MarkAsPaid flags the fine as settled now.
func (f *Fine) MarkAsPaid() {
	f.Status = FineStatusPaid
	now := time.Now()
	f.PaidAt = &now
}

// MarkAsUnpaid reverts a payment toggle.
func (f *Fine) MarkAsUnpaid() {
	f.Status = FineStatusUnpaid
	f.PaidAt = nil
}
