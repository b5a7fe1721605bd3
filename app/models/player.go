package models

import "time"

// Player represents a squad member fines can be issued against.
// A player may exist without a linked user account.
type Player struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid" validate:"required,uuid"`
	Name      string     `json:"name" gorm:"not null" validate:"required"`
	Position  *string    `json:"position,omitempty"`
	Number    *int       `json:"number,omitempty"`
	BirthDate *time.Time `json:"birthDate,omitempty" gorm:"type:date"`
	AvatarURL *string    `json:"avatarUrl,omitempty"`
	// System players (placeholder accounts) are never issued automatic fines.
	IsSystem  bool      `json:"isSystem" gorm:"default:false"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
	Fines     []*Fine   `json:"fines,omitempty" gorm:"foreignKey:PlayerID;references:ID"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:PlayerID;references:ID"`
}

// PlayerStats is a player row decorated with fine aggregates.
type PlayerStats struct {
	Player
	TotalFines  int `json:"totalFines"`
	TotalUnpaid int `json:"totalUnpaid"`
	TotalPaid   int `json:"totalPaid"`
	FineCount   int `json:"fineCount"`
}
