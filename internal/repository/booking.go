package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/domain"
)

type BookingRepository struct {
	api       API
	endpoints Endpoints
}

func NewBookingRepo(api API) *BookingRepository {
	return &BookingRepository{api: api, endpoints: BookingEndpoints}
}

func (r *BookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	var res []domain.Booking
	if err := r.api.Do(ctx, http.MethodGet, r.endpoints.List, nil, &res); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return res, nil
}

// ListByVisitor filters the full list; the booking API has no filter endpoint.
func (r *BookingRepository) ListByVisitor(ctx context.Context, visitorID domain.ID) ([]domain.Booking, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.Booking, 0)
	for _, b := range all {
		if b.VisitorID == visitorID {
			res = append(res, b)
		}
	}
	return res, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.api.Do(ctx, http.MethodGet, expand(r.endpoints.Get, id), nil, &b); err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return &b, nil
}

func (r *BookingRepository) Create(ctx context.Context, b domain.Booking) (*domain.Booking, error) {
	b.Facility, b.Visitor = nil, nil
	var created domain.Booking
	if err := r.api.Do(ctx, http.MethodPost, r.endpoints.Create, b, &created); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return &created, nil
}

func (r *BookingRepository) Update(ctx context.Context, b domain.Booking) (*domain.Booking, error) {
	b.Facility, b.Visitor = nil, nil
	var updated domain.Booking
	if err := r.api.Do(ctx, http.MethodPut, expand(r.endpoints.Update, b.ID), b, &updated); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	return &updated, nil
}
