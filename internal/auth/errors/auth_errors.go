package autherrors

import (
	"net/http"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/shared/apperror"
)

var (
	// ErrInvalidCredentials covers unknown email and wrong password alike so
	// login responses never reveal which one failed.
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"An account with this email already exists",
		http.StatusConflict,
	)
	ErrUsernameAlreadyTaken = apperror.New(
		apperror.CodeConflict,
		"This username is already taken",
		http.StatusConflict,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate token",
		http.StatusInternalServerError,
	)
)
