package pagecraft

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	// Verify sentinel errors are distinct
	errs := []error{
		ErrNotFound,
		ErrNotAContainer,
		ErrUnknownKind,
		ErrDuplicateID,
		ErrNilInstance,
		ErrInvalidToken,
		ErrAlreadyOwned,
	}

	for i, err1 := range errs {
		for j, err2 := range errs {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v and %v", err1, err2)
			}
		}
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect bool
	}{
		{"nil error", nil, false},
		{"ErrNotFound", ErrNotFound, true},
		{"wrapped ErrNotFound", fmt.Errorf("wrapped: %w", ErrNotFound), true},
		{"other error", errors.New("other error"), false},
		{"ErrNotAContainer", ErrNotAContainer, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsNotFound(tt.err)
			if result != tt.expect {
				t.Errorf("IsNotFound(%v) = %v, want %v", tt.err, result, tt.expect)
			}
		})
	}
}

func TestIsNotAContainer(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect bool
	}{
		{"nil error", nil, false},
		{"ErrNotAContainer", ErrNotAContainer, true},
		{"wrapped", fmt.Errorf("insert into %q: %w", "x", ErrNotAContainer), true},
		{"ErrNotFound", ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsNotAContainer(tt.err)
			if result != tt.expect {
				t.Errorf("IsNotAContainer(%v) = %v, want %v", tt.err, result, tt.expect)
			}
		})
	}
}

func TestTreeErrorsWrapSentinels(t *testing.T) {
	tree := MustBuildTree([]Node{{Kind: KindText}})
	inst, _ := tree.NewInstance(KindButton)

	err := tree.InsertIntoContainer("c-1", inst)
	if !IsNotAContainer(err) {
		t.Fatalf("error = %v, want ErrNotAContainer", err)
	}
	if err.Error() == ErrNotAContainer.Error() {
		t.Error("error should carry the target id as context")
	}
}
