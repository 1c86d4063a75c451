package fault

import (
	"errors"
	"fmt"
	"testing"
)

func TestConstructorsSetKindAndMessage(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		kind    Kind
		message string
	}{
		{"validation", Validationf("Invalid %s address!", "email"), KindValidation, "Invalid email address!"},
		{"not found", NotFoundf("The client with id = %d was not found!", 7), KindNotFound, "The client with id = 7 was not found!"},
		{"storage", Storage(errors.New("disk full"), "failed to save client"), KindStorage, "failed to save client"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if KindOf(tt.err) != tt.kind {
				t.Errorf("KindOf = %v, want %v", KindOf(tt.err), tt.kind)
			}
			if tt.err.Error() != tt.message {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.message)
			}
		})
	}
}

func TestStorageUnwrapsCause(t *testing.T) {
	cause := errors.New("database is locked")
	err := Storage(cause, "failed to list products")

	if !errors.Is(err, cause) {
		t.Error("cause must be reachable through errors.Is")
	}
}

func TestKindOfPlainError(t *testing.T) {
	if KindOf(errors.New("plain")) != KindUnknown {
		t.Error("plain errors must map to KindUnknown")
	}
	if KindOf(nil) != KindUnknown {
		t.Error("nil must map to KindUnknown")
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	inner := NotFoundf("The product with id = %d was not found!", 3)
	wrapped := fmt.Errorf("loading order: %w", inner)

	if !IsNotFound(wrapped) {
		t.Error("wrapped fault must keep its kind")
	}
	if IsValidation(wrapped) || IsStorage(wrapped) {
		t.Error("predicates must not match other kinds")
	}
}
