package service

import (
	"context"
	"fmt"

	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/domain"
	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/errgroup"
)

type BookingService struct {
	bookingRepo  ports.BookingRepo
	facilityRepo ports.FacilityRepo
	visitorRepo  ports.VisitorRepo
	notifier     ports.BookingNotifier
	logger       logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	facilityRepo ports.FacilityRepo,
	visitorRepo ports.VisitorRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		facilityRepo: facilityRepo,
		visitorRepo:  visitorRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookingRepo.List(ctx)
}

func (s *BookingService) Get(ctx context.Context, id domain.ID) (domain.Booking, error) {
	if id.IsZero() {
		return domain.Booking{}, fmt.Errorf("%w: booking id is required", domain.ErrValidation)
	}
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Booking{}, err
	}
	return *b, nil
}

// Catalog loads the facilities and visitors a booking can refer to.
func (s *BookingService) Catalog(ctx context.Context) (domain.Catalog, error) {
	var c domain.Catalog

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		facilities, err := s.facilityRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("catalog: %w", err)
		}
		c.Facilities = facilities
		return nil
	})
	g.Go(func() error {
		visitors, err := s.visitorRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("catalog: %w", err)
		}
		c.Visitors = visitors
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.Catalog{}, err
	}
	return c, nil
}

func (s *BookingService) Create(ctx context.Context, in domain.BookingInput) (domain.Booking, error) {
	if err := validateInput(in); err != nil {
		return domain.Booking{}, err
	}

	b, err := s.bookingRepo.Create(ctx, in.Record(""))
	if err != nil {
		return domain.Booking{}, err
	}

	s.logger.Info("booking created",
		logger.String("booking_id", b.ID.String()),
		logger.String("facility_id", b.FacilityID.String()),
		logger.String("visitor_id", b.VisitorID.String()),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), *b)

	return *b, nil
}

func (s *BookingService) Update(ctx context.Context, id domain.ID, in domain.BookingInput) (domain.Booking, error) {
	if id.IsZero() {
		return domain.Booking{}, fmt.Errorf("%w: booking id is required", domain.ErrValidation)
	}
	if err := validateInput(in); err != nil {
		return domain.Booking{}, err
	}

	b, err := s.bookingRepo.Update(ctx, in.Record(id))
	if err != nil {
		return domain.Booking{}, err
	}

	s.logger.Info("booking updated",
		logger.String("booking_id", id.String()),
	)

	go s.notifier.NotifyBookingUpdated(context.WithoutCancel(ctx), *b)

	return *b, nil
}
