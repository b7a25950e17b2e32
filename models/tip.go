package models

import "gorm.io/gorm"

// SavedTip is a daily nutrition tip the user chose to keep.
type SavedTip struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null" json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
}
