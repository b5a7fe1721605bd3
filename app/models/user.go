package models

import "time"

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid" validate:"required,uuid"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null" validate:"required"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	Password  string    `json:"-" gorm:"not null" validate:"required,min=6"`
	Role      string    `json:"role" gorm:"not null;default:'USER'" validate:"required,oneof=ADMIN USER"`
	PlayerID  *string   `json:"playerId,omitempty" gorm:"uniqueIndex;type:uuid"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
	Player    *Player   `json:"player,omitempty" gorm:"foreignKey:PlayerID;references:ID"`
}

// IsAdmin reports whether the user holds the elevated role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
