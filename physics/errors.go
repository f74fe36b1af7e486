package physics

import (
	"errors"
	"fmt"

	"github.com/milk9111/quizplatformer/ecs"
)

var (
	ErrInvalidDamping        = errors.New("physics: damping must be in (0, 1]")
	ErrDuplicateRegistration = errors.New("physics: entity already registered")
	ErrInvalidBody           = errors.New("physics: invalid body definition")
	ErrSpaceLocked           = errors.New("physics: cannot register while stepping")
)

// DuplicateRegistrationError reports a second Register call for the same
// entity. It matches ErrDuplicateRegistration with errors.Is.
type DuplicateRegistrationError struct {
	Entity ecs.Entity
}

func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("physics: entity %s already registered", e.Entity)
}

func (e *DuplicateRegistrationError) Is(target error) bool {
	return target == ErrDuplicateRegistration
}
