package auth

import (
	"errors"
	"testing"
)

func TestStaffKey_Check(t *testing.T) {
	k := NewStaffKey("kitchen-door-1234")

	if err := k.Check("kitchen-door-1234"); err != nil {
		t.Errorf("Check(correct key) failed: %v", err)
	}
	for _, presented := range []string{"kitchen-door-123", "kitchen-door-12345", ""} {
		if err := k.Check(presented); !errors.Is(err, ErrInvalidStaffKey) {
			t.Errorf("Check(%q) error = %v, want ErrInvalidStaffKey", presented, err)
		}
	}

	// An empty key never matches, not even an empty token.
	if err := NewStaffKey("").Check(""); !errors.Is(err, ErrInvalidStaffKey) {
		t.Errorf("empty key accepted an empty token")
	}
}
