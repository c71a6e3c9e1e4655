package service

import (
	"context"
	"fmt"

	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/domain"
	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type FacilityService struct {
	repo   ports.FacilityRepo
	logger logger.Logger
}

func NewFacilityService(repo ports.FacilityRepo, logger logger.Logger) *FacilityService {
	return &FacilityService{repo: repo, logger: logger}
}

func (s *FacilityService) List(ctx context.Context) ([]domain.Facility, error) {
	return s.repo.List(ctx)
}

func (s *FacilityService) Get(ctx context.Context, id domain.ID) (domain.Facility, error) {
	if id.IsZero() {
		return domain.Facility{}, fmt.Errorf("%w: facility id is required", domain.ErrValidation)
	}
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Facility{}, err
	}
	return *f, nil
}

func (s *FacilityService) Create(ctx context.Context, in domain.FacilityInput) (domain.Facility, error) {
	if err := validateInput(in); err != nil {
		return domain.Facility{}, err
	}

	f, err := s.repo.Create(ctx, in.Record(""))
	if err != nil {
		return domain.Facility{}, err
	}

	s.logger.Info("facility created",
		logger.String("facility_id", f.ID.String()),
		logger.String("name", f.Name),
	)
	return *f, nil
}

func (s *FacilityService) Update(ctx context.Context, id domain.ID, in domain.FacilityInput) (domain.Facility, error) {
	if id.IsZero() {
		return domain.Facility{}, fmt.Errorf("%w: facility id is required", domain.ErrValidation)
	}
	if err := validateInput(in); err != nil {
		return domain.Facility{}, err
	}

	f, err := s.repo.Update(ctx, in.Record(id))
	if err != nil {
		return domain.Facility{}, err
	}

	s.logger.Info("facility updated",
		logger.String("facility_id", id.String()),
	)
	return *f, nil
}
