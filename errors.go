package pagecraft

import "errors"

// Sentinel errors for tree and placement operations.
var (
	ErrNotFound      = errors.New("pagecraft: component not found")
	ErrNotAContainer = errors.New("pagecraft: target is not a container")
	ErrUnknownKind   = errors.New("pagecraft: unknown component kind")
	ErrDuplicateID   = errors.New("pagecraft: component id already in tree")
	ErrNilInstance   = errors.New("pagecraft: nil component instance")
	ErrInvalidToken  = errors.New("pagecraft: invalid drag token")
	ErrAlreadyOwned  = errors.New("pagecraft: component belongs to another tree")
)

// IsNotFound checks if err is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsNotAContainer checks if err reports an insertion into a non-container.
func IsNotAContainer(err error) bool {
	return errors.Is(err, ErrNotAContainer)
}

// IsInvalidToken checks if err is a drag token decoding or signature error.
func IsInvalidToken(err error) bool {
	return errors.Is(err, ErrInvalidToken)
}
