package domain

// Quote is the computed result of a single pricing request.
// It combines both resolved coordinates, the travel distance, and the price.
// A Quote is created fresh per request and never mutated afterwards.
type Quote struct {
	Pickup     Coordinates
	Dropoff    Coordinates
	DistanceKM float64
	Size       SizeClass
	Price      float64
}
