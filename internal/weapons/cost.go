package weapons

import (
	"math"

	"gmarm/internal/weapons/models"
)

// ComputeCost prices a reservation: subtotal = unit × quantity, tax on the
// subtotal, each step rounded to cents.
func ComputeCost(unitPrice float64, quantity int, taxRate float64) models.Cost {
	subtotal := roundCents(unitPrice * float64(quantity))
	tax := roundCents(subtotal * taxRate)
	return models.Cost{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    roundCents(subtotal + tax),
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
