package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/domain"
)

type FacilityRepository struct {
	api       API
	endpoints Endpoints
}

func NewFacilityRepo(api API) *FacilityRepository {
	return &FacilityRepository{api: api, endpoints: FacilityEndpoints}
}

func (r *FacilityRepository) List(ctx context.Context) ([]domain.Facility, error) {
	var res []domain.Facility
	if err := r.api.Do(ctx, http.MethodGet, r.endpoints.List, nil, &res); err != nil {
		return nil, fmt.Errorf("list facilities: %w", err)
	}
	return res, nil
}

func (r *FacilityRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Facility, error) {
	var f domain.Facility
	if err := r.api.Do(ctx, http.MethodGet, expand(r.endpoints.Get, id), nil, &f); err != nil {
		return nil, fmt.Errorf("get facility: %w", err)
	}
	return &f, nil
}

func (r *FacilityRepository) Create(ctx context.Context, f domain.Facility) (*domain.Facility, error) {
	var created domain.Facility
	if err := r.api.Do(ctx, http.MethodPost, r.endpoints.Create, f, &created); err != nil {
		return nil, fmt.Errorf("create facility: %w", err)
	}
	return &created, nil
}

func (r *FacilityRepository) Update(ctx context.Context, f domain.Facility) (*domain.Facility, error) {
	var updated domain.Facility
	if err := r.api.Do(ctx, http.MethodPut, expand(r.endpoints.Update, f.ID), f, &updated); err != nil {
		return nil, fmt.Errorf("update facility: %w", err)
	}
	return &updated, nil
}

// Probe reports whether the booking API answers the facility listing.
func (r *FacilityRepository) Probe(ctx context.Context) error {
	_, err := r.List(ctx)
	return err
}
