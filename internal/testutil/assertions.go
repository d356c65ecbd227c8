package testutil

import (
	"errors"
	"testing"

	apperrors "moneytracker/internal/errors"
	"moneytracker/internal/kvstore"
	"moneytracker/internal/snapshot"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertNoWrites fails the test if kv accepted any write since before, the
// value of kv.Writes() taken earlier. Rejected operations must not persist.
func AssertNoWrites(t *testing.T, kv *kvstore.Memory, before int) {
	t.Helper()

	if got := kv.Writes() - before; got != 0 {
		t.Errorf("expected no writes, got %d", got)
	}
}

// AssertCardBroken checks the archived flag of a card in the current
// snapshot.
func AssertCardBroken(t *testing.T, store *snapshot.Store, cardID string, want bool) {
	t.Helper()

	card := store.Snapshot().Card(cardID)
	if card == nil {
		t.Fatalf("card %s not found", cardID)
	}
	if card.IsBroken != want {
		t.Errorf("card %s: expected broken=%v, got %v", cardID, want, card.IsBroken)
	}
}
