package content

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundErrorMessage(t *testing.T) {
	err := &NotFoundError{Resource: "content", Key: "my-post"}
	if got := err.Error(); got != `content "my-post" not found` {
		t.Fatalf("Error() = %q", got)
	}

	err = &NotFoundError{Resource: "collection"}
	if got := err.Error(); got != "collection not found" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestIsNotFound(t *testing.T) {
	base := &NotFoundError{Resource: "content", Key: "x"}
	if !IsNotFound(base) {
		t.Fatal("IsNotFound should match a direct NotFoundError")
	}
	if !IsNotFound(fmt.Errorf("lookup: %w", base)) {
		t.Fatal("IsNotFound should match a wrapped NotFoundError")
	}
	if IsNotFound(errors.New("something else")) {
		t.Fatal("IsNotFound should reject unrelated errors")
	}
	if IsNotFound(nil) {
		t.Fatal("IsNotFound(nil) should be false")
	}
}
