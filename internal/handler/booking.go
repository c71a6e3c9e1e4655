package handler

import (
	"context"

	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/domain"
	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/handler/dto"
	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/view"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func (h *Handler) bookings() resource[domain.Booking, domain.BookingInput] {
	return resource[domain.Booking, domain.BookingInput]{
		path:    "/bookings",
		noun:    "Booking",
		page:    "bookings",
		store:   h.bookingService,
		inputOf: domain.Booking.Input,
		bind: func(c *ginext.Context) (domain.BookingInput, error) {
			var req dto.BookingForm
			if err := c.ShouldBind(&req); err != nil {
				return req.Input(), dto.BindError(err)
			}
			return req.Input(), nil
		},
		decorate: h.bookingCatalog,
	}
}

// bookingCatalog resolves facility and visitor names for the table and offers
// them as choices in the form.
func (h *Handler) bookingCatalog(ctx context.Context, d *pageData[domain.Booking, domain.BookingInput]) {
	catalog, err := h.bookingService.Catalog(ctx)
	if err != nil {
		h.logger.LogAttrs(ctx, logger.WarnLevel, "failed to load booking catalog",
			logger.String("error", err.Error()),
		)
		if d.Notice == nil {
			d.Notice = view.Failure("load facilities and visitors", err)
		}
		return
	}

	d.Catalog = &catalog
	d.Items = domain.EnrichBookings(d.Items, catalog.Facilities, catalog.Visitors)
	if d.Detail != nil {
		enriched := domain.EnrichBookings([]domain.Booking{*d.Detail}, catalog.Facilities, catalog.Visitors)
		d.Detail = &enriched[0]
	}
}

func (h *Handler) ListBookings(c *ginext.Context)  { list(h, c, h.bookings()) }
func (h *Handler) NewBooking(c *ginext.Context)    { openCreate(h, c, h.bookings()) }
func (h *Handler) CreateBooking(c *ginext.Context) { submit(h, c, h.bookings()) }
func (h *Handler) GetBooking(c *ginext.Context)    { detail(h, c, h.bookings()) }
func (h *Handler) EditBooking(c *ginext.Context)   { openEdit(h, c, h.bookings()) }
func (h *Handler) UpdateBooking(c *ginext.Context) { submit(h, c, h.bookings()) }
