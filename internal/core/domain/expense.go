package domain

// DateLayout is the calendar-day format used by the legacy statistics API
// and as the ExpenseMap key.
const DateLayout = "2006-01-02"

// MaxDaysBack bounds the expense window to ten years.
const MaxDaysBack = 3650

// ExpenseMap maps a calendar day (DateLayout) to the spend on that day in
// normalized currency units.
type ExpenseMap map[string]float64

// Add accumulates cost for the given day.
func (m ExpenseMap) Add(day string, cost float64) {
	m[day] += cost
}

// Total returns the sum of all days.
func (m ExpenseMap) Total() float64 {
	var total float64
	for _, v := range m {
		total += v
	}
	return total
}
