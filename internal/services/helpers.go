package services

import (
	"errors"
	"math"
	"strings"

	apperrors "moneytracker/internal/errors"
	"moneytracker/internal/snapshot"
)

// commit runs fn as one snapshot update. AppErrors from fn pass through;
// anything else (a persistence failure) is reported as an internal error.
func commit(store *snapshot.Store, fn func(*snapshot.State) error) error {
	err := store.Update(fn)
	if err == nil {
		return nil
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
