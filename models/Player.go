package models

import "gorm.io/gorm"

// Player represents an operator account able to sign in to the terminal.
type Player struct {
	gorm.Model
	Callsign   string `gorm:"uniqueIndex;not null"`
	AccessHash string `gorm:"not null"`
	Theme      string `gorm:"type:varchar(32);default:terminal"`
}
