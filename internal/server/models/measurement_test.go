package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBalance_NoMeasurements(t *testing.T) {
	assert.Equal(t, 10.0, Balance(10, nil))
}

func TestBalance_Scenario(t *testing.T) {
	ms := []*Measurement{{Quantity: 4}, {Quantity: 3}}
	assert.Equal(t, 3.0, Balance(10, ms))

	ms = append(ms, &Measurement{Quantity: 5})
	assert.Equal(t, -2.0, Balance(10, ms), "over-measurement is not clamped")
}

func TestServiceItem_Balance(t *testing.T) {
	item := &ServiceItem{Quantity: 10, MeasuredTotal: 7}
	assert.Equal(t, 3.0, item.Balance())

	item.MeasuredTotal = 12
	assert.Equal(t, -2.0, item.Balance())
}
