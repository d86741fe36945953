// Package testutil provides shared fixtures for view engine tests.
package testutil

import (
	"fmt"

	"github.com/roach88/dashview/internal/model"
	"github.com/roach88/dashview/internal/seed"
)

// Pharmacies returns the ten-pharmacy demo collection.
//
// Sells: 1245, 987, 1562, 843, 721, 1100, 920, 1350, 1050, 1500 (sum 11278).
// Cairo hosts ids 1, 4 and 10.
func Pharmacies() []model.Record {
	return seed.Default()
}

// Record builds a record with the fields most tests care about.
func Record(id model.ID, name, city string, sells, buys int) model.Record {
	return model.Record{
		ID:            id,
		Name:          name,
		City:          city,
		LicenseNumber: fmt.Sprintf("PH%06d", id),
		Sells:         sells,
		Buys:          buys,
	}
}

// Numbered builds n records with ids 1..n, cycling through three cities.
func Numbered(n int) []model.Record {
	cities := []string{"Cairo", "Giza", "Luxor"}
	out := make([]model.Record, n)
	for i := range out {
		id := model.ID(i + 1)
		out[i] = Record(id, fmt.Sprintf("Pharmacy %02d", id), cities[i%len(cities)], (i*37)%101, (i*13)%29)
	}
	return out
}
