package locationerrors

import (
	"net/http"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/shared/apperror"
)

var (
	ErrLocationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Location not found",
		http.StatusNotFound,
	)
	ErrLocationInUse = apperror.New(
		apperror.CodeConflict,
		"Location still has employees assigned",
		http.StatusConflict,
	)
)
