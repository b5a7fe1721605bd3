package models

import "time"

// SiteContent is a key→text store for semi-static editable content
// (the rules page) and internal markers (the fine-type catalog version).
type SiteContent struct {
	Key       string    `json:"key" gorm:"primaryKey"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// Well-known SiteContent keys.
const (
	ContentKeyRules            = "rules"
	ContentKeyFineTypesVersion = "fineTypesVersion"
)
