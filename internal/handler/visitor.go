package handler

import (
	"context"

	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/domain"
	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/handler/dto"
	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/view"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func (h *Handler) visitors() resource[domain.Visitor, domain.VisitorInput] {
	return resource[domain.Visitor, domain.VisitorInput]{
		path:    "/visitors",
		noun:    "Visitor",
		page:    "visitors",
		store:   h.visitorService,
		inputOf: domain.Visitor.Input,
		bind: func(c *ginext.Context) (domain.VisitorInput, error) {
			var req dto.VisitorForm
			if err := c.ShouldBind(&req); err != nil {
				return req.Input(), dto.BindError(err)
			}
			return req.Input(), nil
		},
		decorate: h.visitorBookings,
	}
}

// visitorBookings lists the bookings of the visitor shown in the popup.
func (h *Handler) visitorBookings(ctx context.Context, d *pageData[domain.Visitor, domain.VisitorInput]) {
	if d.Detail == nil {
		return
	}

	bookings, err := h.visitorService.Bookings(ctx, d.Detail.ID)
	if err != nil {
		h.logger.LogAttrs(ctx, logger.WarnLevel, "failed to load visitor bookings",
			logger.String("visitor_id", d.Detail.ID.String()),
			logger.String("error", err.Error()),
		)
		if d.Notice == nil {
			d.Notice = view.Failure("load visitor bookings", err)
		}
		return
	}
	d.VisitorBookings = bookings
}

func (h *Handler) ListVisitors(c *ginext.Context)  { list(h, c, h.visitors()) }
func (h *Handler) NewVisitor(c *ginext.Context)    { openCreate(h, c, h.visitors()) }
func (h *Handler) CreateVisitor(c *ginext.Context) { submit(h, c, h.visitors()) }
func (h *Handler) GetVisitor(c *ginext.Context)    { detail(h, c, h.visitors()) }
func (h *Handler) EditVisitor(c *ginext.Context)   { openEdit(h, c, h.visitors()) }
func (h *Handler) UpdateVisitor(c *ginext.Context) { submit(h, c, h.visitors()) }
