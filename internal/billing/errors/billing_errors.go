package billingerrors

import (
	"net/http"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/shared/apperror"
)

var (
	ErrOverrideNotFound = apperror.New(
		apperror.CodeNotFound,
		"No active billing override for this organization",
		http.StatusNotFound,
	)
	ErrInvalidOverrideType = apperror.New(
		apperror.CodeInvalidInput,
		"Override type must be none, discount_percent, fixed_price, or comped",
		http.StatusBadRequest,
	)
	ErrDiscountOutOfRange = apperror.New(
		apperror.CodeInvalidInput,
		"discount_percent must be between 1 and 100",
		http.StatusBadRequest,
	)
	ErrFixedPriceNegative = apperror.New(
		apperror.CodeInvalidInput,
		"fixed_price_cents must be zero or greater",
		http.StatusBadRequest,
	)
	ErrNoteRequired = apperror.New(
		apperror.CodeInvalidInput,
		"A justification note is required",
		http.StatusBadRequest,
	)
	ErrInvalidWindow = apperror.New(
		apperror.CodeInvalidInput,
		"ends_at must be after starts_at",
		http.StatusBadRequest,
	)
	ErrNoBillingAccount = apperror.New(
		apperror.CodeInvalidInput,
		"Organization has no billing account yet",
		http.StatusBadRequest,
	)
)
