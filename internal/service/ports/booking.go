package ports

import (
	"context"

	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/domain"
)

type BookingRepo interface {
	List(ctx context.Context) ([]domain.Booking, error)
	ListByVisitor(ctx context.Context, visitorID domain.ID) ([]domain.Booking, error)
	GetByID(ctx context.Context, id domain.ID) (*domain.Booking, error)
	Create(ctx context.Context, b domain.Booking) (*domain.Booking, error)
	Update(ctx context.Context, b domain.Booking) (*domain.Booking, error)
}
