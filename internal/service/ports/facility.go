package ports

import (
	"context"

	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/domain"
)

type FacilityRepo interface {
	List(ctx context.Context) ([]domain.Facility, error)
	GetByID(ctx context.Context, id domain.ID) (*domain.Facility, error)
	Create(ctx context.Context, f domain.Facility) (*domain.Facility, error)
	Update(ctx context.Context, f domain.Facility) (*domain.Facility, error)
}
