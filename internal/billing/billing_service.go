package billing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v81"
	portalsession "github.com/stripe/stripe-go/v81/billingportal/session"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/audit"
	billingerrors "github.com/jerrsapps1/SafetySync-V2-sub000/internal/billing/errors"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/company"
	companyerrors "github.com/jerrsapps1/SafetySync-V2-sub000/internal/company/errors"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/config"
	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/shared/apperror"
)

// Monthly list prices in cents, keyed by plan.
var planBasePriceCents = map[string]int64{
	company.PlanTrial:      0,
	company.PlanStarter:    4900,
	company.PlanPro:        9900,
	company.PlanEnterprise: 24900,
}

//go:generate mockgen -source=billing_service.go -destination=mock/billing_service_mock.go -package=mock
type Service interface {
	GetBillingView(ctx context.Context, companyID string) (BillingViewResponse, error)
	CreateOverride(ctx context.Context, companyID, actorID, actorRole string, req CreateOverrideRequest) (OverrideResponse, error)
	DeleteOverride(ctx context.Context, companyID, actorID, actorRole string) error
	AddNote(ctx context.Context, companyID, actorID, actorRole string, req AddNoteRequest) (NoteResponse, error)
	ListNotes(ctx context.Context, companyID string) ([]NoteResponse, error)
	CreatePortalLink(ctx context.Context, companyID string) (PortalLinkResponse, error)
}

type service struct {
	store     Store
	companies company.Repository
	recorder  *audit.Recorder
	cfg       *config.Config
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	store Store,
	companies company.Repository,
	recorder *audit.Recorder,
	cfg *config.Config,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("billing.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("billing.service")
	}
	return &service{
		store:     store,
		companies: companies,
		recorder:  recorder,
		cfg:       cfg,
		now:       time.Now,
		logger:    l,
	}
}

// NewServiceWithClock is used by tests that need a fixed notion of now.
func NewServiceWithClock(
	store Store,
	companies company.Repository,
	recorder *audit.Recorder,
	cfg *config.Config,
	now func() time.Time,
	logger ...*zap.Logger,
) Service {
	svc := NewService(store, companies, recorder, cfg, logger...).(*service)
	svc.now = now
	return svc
}

func (s *service) GetBillingView(ctx context.Context, companyID string) (BillingViewResponse, error) {
	comp, err := s.getCompany(ctx, companyID)
	if err != nil {
		return BillingViewResponse{}, err
	}

	base := planBasePriceCents[comp.Plan]
	view := BillingViewResponse{
		CompanyID:            comp.ID.String(),
		Plan:                 comp.Plan,
		BillingStatus:        comp.BillingStatus,
		StripeCustomerID:     maskIdentifier(comp.StripeCustomerID),
		StripeSubscriptionID: maskIdentifier(comp.StripeSubscriptionID),
		StripePriceID:        s.stripePriceID(comp.Plan),
		BasePriceCents:       base,
		EffectivePriceCents:  base,
	}
	if comp.TrialEndsAt != nil {
		view.TrialEndsAt = comp.TrialEndsAt.Format(time.RFC3339)
	}

	override, err := s.activeOverride(ctx, companyID)
	if err != nil {
		return BillingViewResponse{}, err
	}
	if override != nil {
		resp := mapOverrideToResponse(*override)
		view.Override = &resp
		view.EffectivePriceCents = effectivePriceCents(base, override)
	}

	return view, nil
}

func (s *service) CreateOverride(
	ctx context.Context,
	companyID, actorID, actorRole string,
	req CreateOverrideRequest,
) (OverrideResponse, error) {
	comp, err := s.getCompany(ctx, companyID)
	if err != nil {
		return OverrideResponse{}, err
	}

	startsAt, endsAt, err := s.validateOverride(req)
	if err != nil {
		return OverrideResponse{}, err
	}

	o := &Override{
		ID:           uuid.New(),
		CompanyID:    comp.ID,
		OverrideType: req.Type,
		Note:         req.Note,
		StartsAt:     startsAt,
		EndsAt:       endsAt,
		CreatedBy:    uuid.MustParse(actorID),
	}
	switch req.Type {
	case OverrideDiscountPercent:
		o.DiscountPercent = req.DiscountPercent
	case OverrideFixedPrice:
		o.FixedPriceCents = req.FixedPriceCents
	}

	if err := s.store.ReplaceOverride(ctx, o); err != nil {
		s.logger.Error("replace billing override failed",
			zap.String("company_id", companyID),
			zap.Error(err),
		)
		return OverrideResponse{}, err
	}

	// The upsert keeps the existing row's primary key when the company
	// already had an override, so read the stored row back instead of
	// answering with the id generated above.
	stored, err := s.store.GetOverride(ctx, companyID)
	if err != nil {
		s.logger.Error("read back billing override failed",
			zap.String("company_id", companyID),
			zap.Error(err),
		)
		return OverrideResponse{}, err
	}

	s.recorder.Record(audit.Record{
		ActorID:    actorID,
		ActorRole:  actorRole,
		Action:     "billing_override_created",
		TargetType: "company",
		TargetID:   companyID,
		Metadata: map[string]any{
			"type": req.Type,
			"note": req.Note,
		},
	})

	s.logger.Info("billing override created",
		zap.String("company_id", companyID),
		zap.String("type", req.Type),
	)

	return mapOverrideToResponse(*stored), nil
}

func (s *service) DeleteOverride(ctx context.Context, companyID, actorID, actorRole string) error {
	if _, err := s.getCompany(ctx, companyID); err != nil {
		return err
	}

	rows, err := s.store.DeleteOverride(ctx, companyID)
	if err != nil {
		s.logger.Error("delete billing override failed",
			zap.String("company_id", companyID),
			zap.Error(err),
		)
		return err
	}
	if rows == 0 {
		return billingerrors.ErrOverrideNotFound
	}

	s.recorder.Record(audit.Record{
		ActorID:    actorID,
		ActorRole:  actorRole,
		Action:     "billing_override_deleted",
		TargetType: "company",
		TargetID:   companyID,
	})

	return nil
}

func (s *service) AddNote(
	ctx context.Context,
	companyID, actorID, actorRole string,
	req AddNoteRequest,
) (NoteResponse, error) {
	comp, err := s.getCompany(ctx, companyID)
	if err != nil {
		return NoteResponse{}, err
	}

	n := &Note{
		ID:        uuid.New(),
		CompanyID: comp.ID,
		Body:      req.Note,
		AuthorID:  uuid.MustParse(actorID),
	}

	if err := s.store.AddNote(ctx, n); err != nil {
		s.logger.Error("add billing note failed",
			zap.String("company_id", companyID),
			zap.Error(err),
		)
		return NoteResponse{}, err
	}

	s.recorder.Record(audit.Record{
		ActorID:    actorID,
		ActorRole:  actorRole,
		Action:     "billing_note_added",
		TargetType: "company",
		TargetID:   companyID,
	})

	return mapNoteToResponse(*n), nil
}

func (s *service) ListNotes(ctx context.Context, companyID string) ([]NoteResponse, error) {
	if _, err := s.getCompany(ctx, companyID); err != nil {
		return nil, err
	}

	notes, err := s.store.ListNotes(ctx, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		result = append(result, mapNoteToResponse(n))
	}
	return result, nil
}

// CreatePortalLink delegates subscription management to the payment
// provider's hosted portal. An absent provider key degrades to an explicit
// not-configured response instead of a generic failure.
func (s *service) CreatePortalLink(ctx context.Context, companyID string) (PortalLinkResponse, error) {
	if !s.cfg.Stripe.Configured() {
		return PortalLinkResponse{}, apperror.ErrBillingNotConfigured
	}

	comp, err := s.getCompany(ctx, companyID)
	if err != nil {
		return PortalLinkResponse{}, err
	}
	if comp.StripeCustomerID == "" {
		return PortalLinkResponse{}, billingerrors.ErrNoBillingAccount
	}

	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(comp.StripeCustomerID),
		ReturnURL: stripe.String(s.cfg.AppBaseURL + "/billing"),
	}
	params.Context = ctx

	sess, err := portalsession.New(params)
	if err != nil {
		s.logger.Error("create billing portal session failed",
			zap.String("company_id", companyID),
			zap.Error(err),
		)
		return PortalLinkResponse{}, err
	}

	return PortalLinkResponse{URL: sess.URL}, nil
}

// stripePriceID maps a plan to its configured provider price. Trial has no
// price object; unconfigured plans surface as empty.
func (s *service) stripePriceID(plan string) string {
	switch plan {
	case company.PlanStarter:
		return s.cfg.Stripe.PriceStarterID
	case company.PlanPro:
		return s.cfg.Stripe.PriceProID
	case company.PlanEnterprise:
		return s.cfg.Stripe.PriceEnterpriseID
	}
	return ""
}

func (s *service) getCompany(ctx context.Context, id string) (*company.Company, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, companyerrors.ErrInvalidCompanyID
	}

	comp, err := s.companies.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, companyerrors.ErrCompanyNotFound
		}
		return nil, err
	}
	return comp, nil
}

// activeOverride returns the stored override only while its validity window
// covers the current time.
func (s *service) activeOverride(ctx context.Context, companyID string) (*Override, error) {
	o, err := s.store.GetOverride(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	now := s.now()
	if o.StartsAt.After(now) {
		return nil, nil
	}
	if o.EndsAt != nil && o.EndsAt.Before(now) {
		return nil, nil
	}
	return o, nil
}

func (s *service) validateOverride(req CreateOverrideRequest) (time.Time, *time.Time, error) {
	if !IsValidOverrideType(req.Type) {
		return time.Time{}, nil, billingerrors.ErrInvalidOverrideType
	}
	if req.Note == "" {
		return time.Time{}, nil, billingerrors.ErrNoteRequired
	}

	switch req.Type {
	case OverrideDiscountPercent:
		if req.DiscountPercent == nil || *req.DiscountPercent < 1 || *req.DiscountPercent > 100 {
			return time.Time{}, nil, billingerrors.ErrDiscountOutOfRange
		}
	case OverrideFixedPrice:
		if req.FixedPriceCents == nil || *req.FixedPriceCents < 0 {
			return time.Time{}, nil, billingerrors.ErrFixedPriceNegative
		}
	}

	startsAt := s.now().UTC()
	if req.StartsAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.StartsAt)
		if err != nil {
			return time.Time{}, nil, apperror.InvalidField("starts_at")
		}
		startsAt = parsed
	}

	var endsAt *time.Time
	if req.EndsAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.EndsAt)
		if err != nil {
			return time.Time{}, nil, apperror.InvalidField("ends_at")
		}
		if !parsed.After(startsAt) {
			return time.Time{}, nil, billingerrors.ErrInvalidWindow
		}
		endsAt = &parsed
	}

	return startsAt, endsAt, nil
}

func effectivePriceCents(base int64, o *Override) int64 {
	switch o.OverrideType {
	case OverrideComped:
		return 0
	case OverrideDiscountPercent:
		if o.DiscountPercent == nil {
			return base
		}
		return base - base*int64(*o.DiscountPercent)/100
	case OverrideFixedPrice:
		if o.FixedPriceCents == nil {
			return base
		}
		return *o.FixedPriceCents
	default:
		return base
	}
}

// maskIdentifier hides all but the last four characters of an external
// billing identifier.
func maskIdentifier(v string) string {
	if v == "" {
		return ""
	}
	if len(v) <= 4 {
		return "****"
	}
	return "****" + v[len(v)-4:]
}

func mapOverrideToResponse(o Override) OverrideResponse {
	resp := OverrideResponse{
		ID:              o.ID.String(),
		CompanyID:       o.CompanyID.String(),
		Type:            o.OverrideType,
		DiscountPercent: o.DiscountPercent,
		FixedPriceCents: o.FixedPriceCents,
		Note:            o.Note,
		StartsAt:        o.StartsAt.Format(time.RFC3339),
		CreatedBy:       o.CreatedBy.String(),
	}
	if o.EndsAt != nil {
		resp.EndsAt = o.EndsAt.Format(time.RFC3339)
	}
	return resp
}

func mapNoteToResponse(n Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID.String(),
		Note:      n.Body,
		AuthorID:  n.AuthorID.String(),
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}
