package models

import "gorm.io/gorm"

// Preference is a single terminal-wide key/value setting. The active skin is
// stored under the "gameTheme" key.
type Preference struct {
	gorm.Model
	Name  string `gorm:"uniqueIndex;not null"`
	Value string
}
