package certificateerrors

import (
	"net/http"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/shared/apperror"
)

var (
	ErrCertificateNotFound = apperror.New(
		apperror.CodeNotFound,
		"Certificate has not been generated yet",
		http.StatusNotFound,
	)
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"Training record not found",
		http.StatusNotFound,
	)
)
