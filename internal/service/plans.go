package service

import "github.com/davmoren/tunebase/internal/domain"

// Plan describes one entry in the static subscription plan catalog.
type Plan struct {
	Type         domain.PlanType `json:"type"`
	MonthlyPrice float64         `json:"monthly_price"`
	Features     []string        `json:"features"`
}

// AvailablePlans returns the static plan catalog. The catalog is fixed at
// build time; there is no plan administration surface.
func AvailablePlans() []Plan {
	return []Plan{
		{
			Type:         domain.PlanFree,
			MonthlyPrice: 0.0,
			Features: []string{
				"Basic catalog",
				"Ad-supported",
				"Standard quality",
			},
		},
		{
			Type:         domain.PlanPremium,
			MonthlyPrice: 9.99,
			Features: []string{
				"Unlimited catalog",
				"No ads",
				"High quality audio",
				"Offline downloads",
			},
		},
	}
}
