package dto

type QuoteRequest struct {
	PickupAddress   string `json:"pickup_address,omitempty"`
	PickupOfficeID  int    `json:"pickup_office_id,omitempty"`
	DropoffAddress  string `json:"dropoff_address,omitempty"`
	DropoffOfficeID int    `json:"dropoff_office_id,omitempty"`
	Size            string `json:"size,omitempty"`
}

type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type QuoteResponse struct {
	Pickup     CoordinatesResponse `json:"pickup"`
	Dropoff    CoordinatesResponse `json:"dropoff"`
	DistanceKM float64             `json:"distance_km"`
	Size       string              `json:"size"`
	Price      float64             `json:"price"`
}
