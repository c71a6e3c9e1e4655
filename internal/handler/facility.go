package handler

import (
	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/domain"
	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) facilities() resource[domain.Facility, domain.FacilityInput] {
	return resource[domain.Facility, domain.FacilityInput]{
		path:    "/facilities",
		noun:    "Facility",
		page:    "facilities",
		store:   h.facilityService,
		inputOf: domain.Facility.Input,
		bind: func(c *ginext.Context) (domain.FacilityInput, error) {
			var req dto.FacilityForm
			if err := c.ShouldBind(&req); err != nil {
				return req.Input(), dto.BindError(err)
			}
			return req.Input(), nil
		},
	}
}

func (h *Handler) ListFacilities(c *ginext.Context) { list(h, c, h.facilities()) }
func (h *Handler) NewFacility(c *ginext.Context)    { openCreate(h, c, h.facilities()) }
func (h *Handler) CreateFacility(c *ginext.Context) { submit(h, c, h.facilities()) }
func (h *Handler) GetFacility(c *ginext.Context)    { detail(h, c, h.facilities()) }
func (h *Handler) EditFacility(c *ginext.Context)   { openEdit(h, c, h.facilities()) }
func (h *Handler) UpdateFacility(c *ginext.Context) { submit(h, c, h.facilities()) }
