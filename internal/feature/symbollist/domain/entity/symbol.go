// Package entity defines the domain models for the symbollist feature.
package entity

import "time"

// Symbol is a chartable instrument. Each active symbol owns exactly one
// generated price series whose random walk starts at StartPrice.
type Symbol struct {
	ID         uint      `gorm:"primaryKey"`
	Code       string    `gorm:"size:20;not null;uniqueIndex"`
	Name       string    `gorm:"size:255;not null"`
	Market     string    `gorm:"size:100;not null;default:''"`
	StartPrice float64   `gorm:"not null;default:150"`
	IsActive   bool      `gorm:"not null;default:true"`
	SortKey    int       `gorm:"not null;default:0"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

// DefaultSymbols は初回起動時に登録されるデモ銘柄です。
func DefaultSymbols() []Symbol {
	return []Symbol{
		{Code: "DEMO", Name: "Demo Random Walk", Market: "SIM", StartPrice: 150, IsActive: true, SortKey: 1},
	}
}
