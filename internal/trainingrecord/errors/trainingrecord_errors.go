package trainingrecorderrors

import (
	"net/http"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/shared/apperror"
)

var (
	// ErrRecordNotFound is returned for nonexistent ids and for ids that
	// belong to another tenant; the two cases are indistinguishable on the
	// wire.
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"Training record not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidRecordID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid training record ID",
		http.StatusBadRequest,
	)
	ErrInvalidCompletedAt = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid completed_at format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidExpiresAt = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid expires_at format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrExpiresBeforeCompleted = apperror.New(
		apperror.CodeInvalidInput,
		"expires_at must be after completed_at",
		http.StatusBadRequest,
	)
)
