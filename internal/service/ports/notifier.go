package ports

import (
	"context"

	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, b domain.Booking)
	NotifyBookingUpdated(ctx context.Context, b domain.Booking)
}
