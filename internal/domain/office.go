package domain

import "fmt"

// A registered company office that can serve as a pickup or dropoff endpoint.
// Coordinates are optional: offices without stored coordinates are geocoded
// from their full address like any free-text endpoint.
type Office struct {
	OfficeID int
	Name     string
	City     string
	Address  string
	Country  string
	Coords   *Coordinates
}

// FullAddress builds the geocodable address string for the office.
func (o Office) FullAddress() string {
	return fmt.Sprintf("%s, %s, %s", o.Address, o.City, o.Country)
}
