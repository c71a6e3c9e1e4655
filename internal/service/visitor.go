package service

import (
	"context"
	"fmt"

	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/domain"
	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type VisitorService struct {
	repo        ports.VisitorRepo
	bookingRepo ports.BookingRepo
	logger      logger.Logger
}

func NewVisitorService(repo ports.VisitorRepo, bookingRepo ports.BookingRepo, logger logger.Logger) *VisitorService {
	return &VisitorService{
		repo:        repo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

func (s *VisitorService) List(ctx context.Context) ([]domain.Visitor, error) {
	return s.repo.List(ctx)
}

func (s *VisitorService) Get(ctx context.Context, id domain.ID) (domain.Visitor, error) {
	if id.IsZero() {
		return domain.Visitor{}, fmt.Errorf("%w: visitor id is required", domain.ErrValidation)
	}
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Visitor{}, err
	}
	return *v, nil
}

// Bookings returns every booking made for the visitor.
func (s *VisitorService) Bookings(ctx context.Context, id domain.ID) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.ListByVisitor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("visitor bookings: %w", err)
	}
	return bookings, nil
}

func (s *VisitorService) Create(ctx context.Context, in domain.VisitorInput) (domain.Visitor, error) {
	if err := validateInput(in); err != nil {
		return domain.Visitor{}, err
	}

	v, err := s.repo.Create(ctx, in.Record(""))
	if err != nil {
		return domain.Visitor{}, err
	}

	s.logger.Info("visitor created",
		logger.String("visitor_id", v.ID.String()),
	)
	return *v, nil
}

func (s *VisitorService) Update(ctx context.Context, id domain.ID, in domain.VisitorInput) (domain.Visitor, error) {
	if id.IsZero() {
		return domain.Visitor{}, fmt.Errorf("%w: visitor id is required", domain.ErrValidation)
	}
	if err := validateInput(in); err != nil {
		return domain.Visitor{}, err
	}

	v, err := s.repo.Update(ctx, in.Record(id))
	if err != nil {
		return domain.Visitor{}, err
	}

	s.logger.Info("visitor updated",
		logger.String("visitor_id", id.String()),
	)
	return *v, nil
}
