package billing

type CreateOverrideRequest struct {
	Type            string `json:"type" binding:"required,oneof=none discount_percent fixed_price comped"`
	DiscountPercent *int   `json:"discount_percent"`
	FixedPriceCents *int64 `json:"fixed_price_cents"`
	Note            string `json:"note" binding:"required"`
	StartsAt        string `json:"starts_at"`
	EndsAt          string `json:"ends_at"`
}

type OverrideResponse struct {
	ID              string `json:"id"`
	CompanyID       string `json:"company_id"`
	Type            string `json:"type"`
	DiscountPercent *int   `json:"discount_percent,omitempty"`
	FixedPriceCents *int64 `json:"fixed_price_cents,omitempty"`
	Note            string `json:"note"`
	StartsAt        string `json:"starts_at"`
	EndsAt          string `json:"ends_at,omitempty"`
	CreatedBy       string `json:"created_by"`
}

type AddNoteRequest struct {
	Note string `json:"note" binding:"required"`
}

type NoteResponse struct {
	ID        string `json:"id"`
	Note      string `json:"note"`
	AuthorID  string `json:"author_id"`
	CreatedAt string `json:"created_at"`
}

type BillingViewResponse struct {
	CompanyID            string            `json:"company_id"`
	Plan                 string            `json:"plan"`
	BillingStatus        string            `json:"billing_status"`
	TrialEndsAt          string            `json:"trial_ends_at,omitempty"`
	StripeCustomerID     string            `json:"stripe_customer_id,omitempty"`
	StripeSubscriptionID string            `json:"stripe_subscription_id,omitempty"`
	StripePriceID        string            `json:"stripe_price_id,omitempty"`
	BasePriceCents       int64             `json:"base_price_cents"`
	EffectivePriceCents  int64             `json:"effective_price_cents"`
	Override             *OverrideResponse `json:"override,omitempty"`
}

type PortalLinkResponse struct {
	URL string `json:"url"`
}
