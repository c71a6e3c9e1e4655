package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/domain"
)

type VisitorRepository struct {
	api       API
	endpoints Endpoints
}

func NewVisitorRepo(api API) *VisitorRepository {
	return &VisitorRepository{api: api, endpoints: VisitorEndpoints}
}

func (r *VisitorRepository) List(ctx context.Context) ([]domain.Visitor, error) {
	var res []domain.Visitor
	if err := r.api.Do(ctx, http.MethodGet, r.endpoints.List, nil, &res); err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}
	return res, nil
}

func (r *VisitorRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Visitor, error) {
	var v domain.Visitor
	if err := r.api.Do(ctx, http.MethodGet, expand(r.endpoints.Get, id), nil, &v); err != nil {
		return nil, fmt.Errorf("get visitor: %w", err)
	}
	return &v, nil
}

func (r *VisitorRepository) Create(ctx context.Context, v domain.Visitor) (*domain.Visitor, error) {
	var created domain.Visitor
	if err := r.api.Do(ctx, http.MethodPost, r.endpoints.Create, v, &created); err != nil {
		return nil, fmt.Errorf("create visitor: %w", err)
	}
	return &created, nil
}

func (r *VisitorRepository) Update(ctx context.Context, v domain.Visitor) (*domain.Visitor, error) {
	var updated domain.Visitor
	if err := r.api.Do(ctx, http.MethodPut, expand(r.endpoints.Update, v.ID), v, &updated); err != nil {
		return nil, fmt.Errorf("update visitor: %w", err)
	}
	return &updated, nil
}
