package ports

import (
	"context"

	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/domain"
)

type VisitorRepo interface {
	List(ctx context.Context) ([]domain.Visitor, error)
	GetByID(ctx context.Context, id domain.ID) (*domain.Visitor, error)
	Create(ctx context.Context, v domain.Visitor) (*domain.Visitor, error)
	Update(ctx context.Context, v domain.Visitor) (*domain.Visitor, error)
}
