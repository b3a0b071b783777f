// Package fake supplies realistic-looking cosmetic profile data (names,
// addresses, company names) backed by gofakeit.
package fake

import "github.com/brianvoe/gofakeit/v7"

// Provider wraps a seeded gofakeit faker. It satisfies
// population.FakeProfileProvider; seeding it alongside the model's random
// source keeps generated populations reproducible.
type Provider struct {
	faker *gofakeit.Faker
}

// NewProvider creates a Provider seeded with seed.
func NewProvider(seed uint64) *Provider {
	return &Provider{faker: gofakeit.New(seed)}
}

func (p *Provider) Name() string { return p.faker.Name() }

func (p *Provider) Address() string { return p.faker.Address().Address }

func (p *Provider) City() string { return p.faker.City() }

func (p *Provider) State() string { return p.faker.State() }

func (p *Provider) Country() string { return p.faker.Country() }

func (p *Provider) Company() string { return p.faker.Company() }
