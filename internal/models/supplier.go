package models

// Supplier is a ready-mix concrete plant that delivers to construction sites.
type Supplier struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Coordinates Location  `json:"coordinates"`
	Capacity    float64   `json:"capacity"`   // m3/h
	CostPerM3   float64   `json:"costPerM3"`  // FCFA
	PumpCost    float64   `json:"pumpCost"`   // FCFA/m3
	Stock       float64   `json:"stock"`      // m3 available
	TruckSizes  []float64 `json:"truckSizes"` // m3 per mixer truck
}

// SupplierEstimate pairs a supplier with its simulated trip to a site.
type SupplierEstimate struct {
	Supplier Supplier          `json:"supplier"`
	Summary  SimulationSummary `json:"summary"`
}

var DefaultSuppliers = []Supplier{
	{
		ID:          "F1",
		Name:        "CMCC",
		Location:    "Etoa Meki",
		Coordinates: Location{Lat: 3.848, Lon: 11.5021},
		Capacity:    50,
		CostPerM3:   108000,
		PumpCost:    7000,
		Stock:       76,
		TruckSizes:  []float64{10, 8},
	},
	{
		ID:          "F2",
		Name:        "BCC",
		Location:    "Olembé",
		Coordinates: Location{Lat: 3.868, Lon: 11.5221},
		Capacity:    50,
		CostPerM3:   109000,
		PumpCost:    10000,
		Stock:       56,
		TruckSizes:  []float64{10, 8},
	},
	{
		ID:          "F3",
		Name:        "SAINTE HELENE",
		Location:    "Nouvelle route Mvan",
		Coordinates: Location{Lat: 3.828, Lon: 11.4821},
		Capacity:    45,
		CostPerM3:   105000,
		PumpCost:    6500,
		Stock:       66,
		TruckSizes:  []float64{10, 8},
	},
	{
		ID:          "F4",
		Name:        "SOMAF",
		Location:    "Nomayos",
		Coordinates: Location{Lat: 3.878, Lon: 11.5421},
		Capacity:    200,
		CostPerM3:   110000,
		PumpCost:    8000,
		Stock:       86,
		TruckSizes:  []float64{10, 8},
	},
}

// FindSupplier looks a supplier up by ID.
func FindSupplier(suppliers []Supplier, id string) (Supplier, bool) {
	for _, s := range suppliers {
		if s.ID == id {
			return s, true
		}
	}
	return Supplier{}, false
}
