package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/kegelbahn/tenpin/internal/apperr"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("notation is required")

	if err.Error() != "notation is required" {
		t.Errorf("expected 'notation is required', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("parse failed")
	err := apperr.NewValidationWrap("invalid cursor", inner)

	if err.Error() != "invalid cursor: parse failed" {
		t.Errorf("expected 'invalid cursor: parse failed', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("player name too long")

	wrapped := fmt.Errorf("failed to bind request: %w", original)
	doubleWrapped := fmt.Errorf("storage error: %w", wrapped)

	var ve *apperr.ValidationError
	if !errors.As(doubleWrapped, &ve) {
		t.Fatal("errors.As should find ValidationError through double wrapping")
	}
	if ve.Message != "player name too long" {
		t.Errorf("expected 'player name too long', got %q", ve.Message)
	}
}

func TestValidationError_NotFoundForPlainErrors(t *testing.T) {
	plain := fmt.Errorf("database connection failed")
	wrapped := fmt.Errorf("storage error: %w", plain)

	var ve *apperr.ValidationError
	if errors.As(wrapped, &ve) {
		t.Fatal("errors.As should NOT find ValidationError in plain error chain")
	}
}

func TestNewNotFound(t *testing.T) {
	err := apperr.NewNotFound("game not found")

	if err.Error() != "game not found" {
		t.Errorf("expected 'game not found', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNotFoundError_SurvivesFmtWrapping(t *testing.T) {
	inner := fmt.Errorf("no rows in result set")
	original := apperr.NewNotFoundWrap("game not found", inner)

	wrapped := fmt.Errorf("get game: %w", original)

	var nfe *apperr.NotFoundError
	if !errors.As(wrapped, &nfe) {
		t.Fatal("errors.As should find NotFoundError through wrapping")
	}
	if !errors.Is(wrapped, inner) {
		t.Error("expected Unwrap chain to reach inner error")
	}
}
