package domain

import "github.com/shopspring/decimal"

// CurrencyPolicy converts platform-native amounts into normalized currency.
// VATCoefficient strips value-added tax from balances (1.18 for an 18% VAT)
// and CurrencyRate converts platform units into the reporting currency
// (30 for y.e. to RUB). Both are policy constants and must be changed when
// the target market's tax or conversion rate differs.
type CurrencyPolicy struct {
	VATCoefficient decimal.Decimal
	CurrencyRate   decimal.Decimal
}

// NewCurrencyPolicy builds a policy from plain coefficients.
func NewCurrencyPolicy(vat, rate float64) CurrencyPolicy {
	return CurrencyPolicy{
		VATCoefficient: decimal.NewFromFloat(vat),
		CurrencyRate:   decimal.NewFromFloat(rate),
	}
}

// Balance converts a remaining account budget: rate / vat * rest.
func (p CurrencyPolicy) Balance(rest float64) float64 {
	if p.VATCoefficient.IsZero() {
		return 0
	}
	v, _ := p.CurrencyRate.Mul(decimal.NewFromFloat(rest)).Div(p.VATCoefficient).Float64()
	return v
}

// Spend converts one day of search and context spend: rate * (search + context).
func (p CurrencyPolicy) Spend(search, context float64) float64 {
	sum := decimal.NewFromFloat(search).Add(decimal.NewFromFloat(context))
	v, _ := p.CurrencyRate.Mul(sum).Float64()
	return v
}
