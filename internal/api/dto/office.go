package dto

type OfficeResponse struct {
	OfficeID int                  `json:"office_id"`
	Name     string               `json:"name"`
	City     string               `json:"city"`
	Address  string               `json:"address"`
	Country  string               `json:"country"`
	Coords   *CoordinatesResponse `json:"coords,omitempty"`
}

type ListOfficesResponse struct {
	Offices []OfficeResponse `json:"offices"`
}
