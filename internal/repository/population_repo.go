package repository

import "atm-stream-generator/internal/models"

// PopulationRepository holds the two generated populations for the lifetime
// of the process. The backing slices are built once at startup and must not
// be mutated; accessors hand them out read-only by convention.
type PopulationRepository struct {
	atms      []models.ATMProfile
	customers []models.CustomerProfile
}

func NewPopulationRepository(atms []models.ATMProfile, customers []models.CustomerProfile) *PopulationRepository {
	return &PopulationRepository{atms: atms, customers: customers}
}

func (r *PopulationRepository) ATMs() []models.ATMProfile {
	return r.atms
}

func (r *PopulationRepository) Customers() []models.CustomerProfile {
	return r.customers
}

func (r *PopulationRepository) Counts() (atms, customers int) {
	return len(r.atms), len(r.customers)
}
