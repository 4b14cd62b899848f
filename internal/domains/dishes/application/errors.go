package application

import (
	"errors"
	"fmt"

	"github.com/melvan27/GrubDash/internal/domains/dishes/domain"
	"github.com/melvan27/GrubDash/internal/domains/dishes/ports"
	apierrors "github.com/melvan27/GrubDash/internal/shared/errors"
)

// mapError turns domain failures that slipped past the pipeline into
// client-facing problems; anything else stays an internal error.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, domain.ErrInvalidPrice):
		return apierrors.Validation("Dish must have a price that is an integer greater than 0").WithCause(err)
	case errors.Is(err, domain.ErrMissingName),
		errors.Is(err, domain.ErrMissingDescription),
		errors.Is(err, domain.ErrMissingImageURL):
		return apierrors.Validation("%s", err.Error()).WithCause(err)
	case errors.Is(err, ports.ErrNotFound):
		return apierrors.NotFound("%s", err.Error()).WithCause(err)
	}
	return fmt.Errorf("dish service: %w", err)
}
