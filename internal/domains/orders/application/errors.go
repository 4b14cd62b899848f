package application

import (
	"errors"
	"fmt"

	"github.com/melvan27/GrubDash/internal/domains/orders/domain"
	"github.com/melvan27/GrubDash/internal/domains/orders/ports"
	apierrors "github.com/melvan27/GrubDash/internal/shared/errors"
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, domain.ErrNoDishes):
		return apierrors.Validation("Order must include at least one dish").WithCause(err)
	case errors.Is(err, domain.ErrMissingDeliverTo):
		return apierrors.Validation("Order must include a deliverTo").WithCause(err)
	case errors.Is(err, domain.ErrMissingMobileNumber):
		return apierrors.Validation("Order must include a mobileNumber").WithCause(err)
	case errors.Is(err, domain.ErrInvalidQuantity):
		return apierrors.Validation("%s", err.Error()).WithCause(err)
	case errors.Is(err, ports.ErrNotFound):
		return apierrors.NotFound("%s", err.Error()).WithCause(err)
	}
	return fmt.Errorf("order service: %w", err)
}
