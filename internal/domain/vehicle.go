package domain

// Vehicle is a catalog entry loaded from the static dataset. The catalog is
// owned outside this service; ids are treated as opaque strings everywhere.
type Vehicle struct {
	ID         string   `json:"id"`
	Slug       string   `json:"slug"`
	Name       string   `json:"name"`
	Brand      string   `json:"brand"`
	PriceText  string   `json:"price,omitempty"`
	PriceValue float64  `json:"price_value,omitempty"`
	ImageURL   string   `json:"image,omitempty"`
	Year       int      `json:"year,omitempty"`
	FuelType   string   `json:"fuel_type,omitempty"`
	Seats      int      `json:"seats,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

type VehicleSort string

const (
	VehicleSortDefault   VehicleSort = ""
	VehicleSortPriceAsc  VehicleSort = "price_asc"
	VehicleSortPriceDesc VehicleSort = "price_desc"
	VehicleSortNameAsc   VehicleSort = "name_asc"
)

type VehicleListFilter struct {
	Search string
	Brand  string
	Sort   VehicleSort
	Limit  int
	Offset int
}

type VehicleListResult struct {
	Total    int       `json:"total"`
	Vehicles []Vehicle `json:"results"`
	Limit    int       `json:"limit"`
	Offset   int       `json:"offset"`
}
