package configs

import (
	"time"
	_ "time/tzdata"

	"direct-ads/internal/core/domain"
)

// Billing holds the policy constants used to normalize money and the
// limits of the statistics API.
type Billing struct {
	// VATCoefficient is stripped from balances (1.18 for an 18% VAT).
	VATCoefficient float64 `env:"VAT_COEFFICIENT" envDefault:"1.18"`
	// CurrencyRate converts platform units into the reporting currency.
	CurrencyRate float64 `env:"CURRENCY_RATE" envDefault:"30"`
	// Timezone is the civil time zone the platform reports days in.
	Timezone string `env:"TIMEZONE" envDefault:"Europe/Moscow"`
	// MethodLimit caps campaign ids times days per statistics call.
	MethodLimit int `env:"METHOD_LIMIT" envDefault:"1000"`
	// DaysBack is the default expense window.
	DaysBack int `env:"DAYS_BACK" envDefault:"7"`
}

// Policy returns the currency conversion policy.
func (c Billing) Policy() domain.CurrencyPolicy {
	return domain.NewCurrencyPolicy(c.VATCoefficient, c.CurrencyRate)
}

// Location loads Timezone.
func (c Billing) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
