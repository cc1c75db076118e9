package factories

import (
	"math"
	"math/rand"

	"github.com/chrisdamba/transitsim/internal/models"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

// sites are scattered up to this multiple of the urban radius so that
// batches contain both urban and rural trips
const siteSpreadFactor = 1.5

type DeliveryRequestFactory struct {
	fake      faker.Faker
	suppliers []models.Supplier
}

// NewDeliveryRequestFactory draws sites and suppliers from a faker seeded with seed.
func NewDeliveryRequestFactory(seed int64, suppliers []models.Supplier) *DeliveryRequestFactory {
	if len(suppliers) == 0 {
		suppliers = models.DefaultSuppliers
	}
	return &DeliveryRequestFactory{
		fake:      faker.NewWithSeed(rand.NewSource(seed)),
		suppliers: suppliers,
	}
}

func (f *DeliveryRequestFactory) CreateDeliveryRequest(config *models.Config) models.DeliveryRequest {
	// approx. conversion from km to degrees
	latRange := config.UrbanRadius * siteSpreadFactor / 111.0
	lonRange := latRange / math.Cos(config.CityLat*math.Pi/180.0)

	site := models.Location{
		Lat: clamp(config.CityLat+f.fake.Float64(6, -1, 1)*latRange, -90, 90),
		Lon: clamp(config.CityLon+f.fake.Float64(6, -1, 1)*lonRange, -180, 180),
	}

	season := config.Season
	if f.fake.IntBetween(0, 1) == 1 {
		season = models.SeasonRainy
	}

	return models.DeliveryRequest{
		ID:       cuid.New(),
		Supplier: f.suppliers[f.fake.IntBetween(0, len(f.suppliers)-1)],
		SiteName: f.fake.Address().StreetName(),
		Site:     site,
		Hour:     f.fake.IntBetween(config.WindowStartHour, config.WindowEndHour),
		Season:   season,
	}
}

// CreateDeliveryRequests returns n requests.
func (f *DeliveryRequestFactory) CreateDeliveryRequests(config *models.Config, n int) []models.DeliveryRequest {
	requests := make([]models.DeliveryRequest, n)
	for i := range requests {
		requests[i] = f.CreateDeliveryRequest(config)
	}
	return requests
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
