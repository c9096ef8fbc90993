// Package entity defines the domain models for the series feature.
package entity

import "time"

// Sample is one (date, price) observation of a symbol's daily price series.
// Samples are ordered chronologically and never mutated after generation.
type Sample struct {
	Symbol string    // Symbol code the sample belongs to (e.g., "DEMO")
	Date   time.Time // Trading day, truncated to midnight UTC
	Price  float64   // Price for the day; always positive
}

// DateString はISO形式 (YYYY-MM-DD) の日付文字列を返します。
func (s Sample) DateString() string {
	return s.Date.UTC().Format("2006-01-02")
}
