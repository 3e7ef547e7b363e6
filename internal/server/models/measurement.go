package models

import "time"

// Measurement records executed quantity for a service item.
type Measurement struct {
	ID          string
	ItemID      string
	Date        *time.Time
	Description *string
	Quantity    float64
	UnitPrice   float64
	TotalPrice  float64
	UserCreated string
}

// MeasuredTotal sums the quantities of ms.
func MeasuredTotal(ms []*Measurement) float64 {
	var total float64
	for _, m := range ms {
		total += m.Quantity
	}
	return total
}

// Balance returns quantity minus everything measured, unclamped.
func Balance(quantity float64, ms []*Measurement) float64 {
	return quantity - MeasuredTotal(ms)
}
