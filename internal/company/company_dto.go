package company

import "time"

type UpdateCompanyRequest struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	State   string `json:"state"`
	Phone   string `json:"phone"`
}

type CompanyResponse struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Plan                string     `json:"plan"`
	BillingStatus       string     `json:"billing_status"`
	TrialEndsAt         *time.Time `json:"trial_ends_at,omitempty"`
	OnboardingCompleted bool       `json:"onboarding_completed"`
	Country             string     `json:"country,omitempty"`
	State               string     `json:"state,omitempty"`
	Phone               string     `json:"phone,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}
