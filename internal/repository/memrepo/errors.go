package memrepo

import (
	"fmt"

	"github.com/fds-bd/fds-server/internal/domain"
)

// notFoundErr and duplicateErr tag the domain sentinel with the repository
// context, so callers can errors.Is while logs still say where it happened.
func notFoundErr(format string, args ...any) error {
	return fmt.Errorf("[repository/%s] %w", fmt.Sprintf(format, args...), domain.ErrRecordNotFound)
}

func duplicateErr(format string, args ...any) error {
	return fmt.Errorf("[repository/%s] %w", fmt.Sprintf(format, args...), domain.ErrDuplicateKey)
}
