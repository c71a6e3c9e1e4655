package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/domain"
	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/view"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type FacilitySvc interface {
	List(ctx context.Context) ([]domain.Facility, error)
	Get(ctx context.Context, id domain.ID) (domain.Facility, error)
	Create(ctx context.Context, in domain.FacilityInput) (domain.Facility, error)
	Update(ctx context.Context, id domain.ID, in domain.FacilityInput) (domain.Facility, error)
}

type VisitorSvc interface {
	List(ctx context.Context) ([]domain.Visitor, error)
	Get(ctx context.Context, id domain.ID) (domain.Visitor, error)
	Create(ctx context.Context, in domain.VisitorInput) (domain.Visitor, error)
	Update(ctx context.Context, id domain.ID, in domain.VisitorInput) (domain.Visitor, error)
	Bookings(ctx context.Context, id domain.ID) ([]domain.Booking, error)
}

type BookingSvc interface {
	List(ctx context.Context) ([]domain.Booking, error)
	Get(ctx context.Context, id domain.ID) (domain.Booking, error)
	Create(ctx context.Context, in domain.BookingInput) (domain.Booking, error)
	Update(ctx context.Context, id domain.ID, in domain.BookingInput) (domain.Booking, error)
	Catalog(ctx context.Context) (domain.Catalog, error)
}

type StatusReporter interface {
	Status() domain.APIStatus
}

type Options struct {
	PageSize int
	Strategy view.Strategy
	// API reports booking API reachability on /health. Optional.
	API StatusReporter
}

type Handler struct {
	facilityService FacilitySvc
	visitorService  VisitorSvc
	bookingService  BookingSvc
	opts            Options
	logger          logger.Logger
}

func NewHandler(
	facilityService FacilitySvc,
	visitorService VisitorSvc,
	bookingService BookingSvc,
	opts Options,
	logger logger.Logger,
) *Handler {
	return &Handler{
		facilityService: facilityService,
		visitorService:  visitorService,
		bookingService:  bookingService,
		opts:            opts,
		logger:          logger,
	}
}

func (h *Handler) Home(c *ginext.Context) {
	c.Redirect(http.StatusFound, "/facilities")
}

func (h *Handler) Health(c *ginext.Context) {
	resp := ginext.H{"status": "ok"}
	if h.opts.API == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	st := h.opts.API.Status()
	switch {
	case !st.Checked:
		resp["api"] = "unknown"
	case st.Up:
		resp["api"] = "up"
	default:
		resp["api"] = "down"
		resp["api_error"] = st.LastError
	}
	if st.Checked {
		resp["api_checked_at"] = st.LastCheck.UTC().Format(time.RFC3339)
	}
	c.JSON(http.StatusOK, resp)
}

// resource binds one entity collection to its routes and page template.
type resource[T view.Entity, I any] struct {
	path  string
	noun  string
	page  string
	store view.Store[T, I]

	inputOf func(T) I
	bind    func(c *ginext.Context) (I, error)
	// decorate adds entity specific data after the view operation ran.
	decorate func(ctx context.Context, d *pageData[T, I])
}

type pageData[T view.Entity, I any] struct {
	view.State[T, I]

	Title string
	Path  string
	Noun  string

	Catalog         *domain.Catalog
	VisitorBookings []domain.Booking
}

func mount[T view.Entity, I any](h *Handler, r resource[T, I]) *view.Editor[T, I] {
	return view.NewEditor(r.store, view.Options[T, I]{
		Noun:     r.noun,
		PageSize: h.opts.PageSize,
		Strategy: h.opts.Strategy,
		InputOf:  r.inputOf,
	}, h.logger)
}

// load mounts a view and fills it. It returns nil when the client went away.
func load[T view.Entity, I any](h *Handler, c *ginext.Context, r resource[T, I]) *view.Editor[T, I] {
	ed := mount(h, r)
	if err := ed.Load(c.Request.Context()); errors.Is(err, domain.ErrViewClosed) {
		ed.Close()
		return nil
	}
	ed.GotoPage(pageParam(c))
	switch c.Query("step") {
	case "next":
		ed.NextPage()
	case "prev":
		ed.PrevPage()
	}
	return ed
}

func list[T view.Entity, I any](h *Handler, c *ginext.Context, r resource[T, I]) {
	ed := load(h, c, r)
	if ed == nil {
		return
	}
	defer ed.Close()

	show(h, c, http.StatusOK, r, ed)
}

func openCreate[T view.Entity, I any](h *Handler, c *ginext.Context, r resource[T, I]) {
	ed := load(h, c, r)
	if ed == nil {
		return
	}
	defer ed.Close()

	_ = ed.OpenCreate()
	show(h, c, http.StatusOK, r, ed)
}

func openEdit[T view.Entity, I any](h *Handler, c *ginext.Context, r resource[T, I]) {
	ed := load(h, c, r)
	if ed == nil {
		return
	}
	defer ed.Close()

	status := http.StatusOK
	if err := ed.OpenEdit(domain.ID(c.Param("id"))); err != nil {
		ed.Cancel()
		ed.Notify(view.Failure("edit "+strings.ToLower(r.noun), err))
		status = statusFor(err)
	}
	show(h, c, status, r, ed)
}

func detail[T view.Entity, I any](h *Handler, c *ginext.Context, r resource[T, I]) {
	ed := load(h, c, r)
	if ed == nil {
		return
	}
	defer ed.Close()

	status := http.StatusOK
	if _, err := ed.ShowDetail(c.Request.Context(), domain.ID(c.Param("id"))); err != nil {
		if errors.Is(err, domain.ErrViewClosed) {
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			status = http.StatusNotFound
		}
	}
	show(h, c, status, r, ed)
}

// submit handles both create (no :id) and update.
func submit[T view.Entity, I any](h *Handler, c *ginext.Context, r resource[T, I]) {
	ed := load(h, c, r)
	if ed == nil {
		return
	}
	defer ed.Close()

	action := "create " + strings.ToLower(r.noun)
	if id := c.Param("id"); id != "" {
		action = "update " + strings.ToLower(r.noun)
		// The form is replaced below, a missing held copy does not matter.
		_ = ed.OpenEdit(domain.ID(id))
	} else {
		_ = ed.OpenCreate()
	}

	in, err := r.bind(c)
	_ = ed.SetForm(in)
	if err != nil {
		ed.Notify(view.Failure(action, err))
		show(h, c, http.StatusBadRequest, r, ed)
		return
	}

	_, err = ed.Submit(c.Request.Context())
	if errors.Is(err, domain.ErrViewClosed) {
		return
	}
	show(h, c, statusFor(err), r, ed)
}

func show[T view.Entity, I any](h *Handler, c *ginext.Context, status int, r resource[T, I], ed *view.Editor[T, I]) {
	d := &pageData[T, I]{
		State: ed.State(),
		Title: r.noun + " List",
		Path:  r.path,
		Noun:  r.noun,
	}
	if r.decorate != nil {
		r.decorate(c.Request.Context(), d)
	}
	h.render(c, status, r.page, d)
}

// statusFor maps the outcome of a view operation to a response status.
func statusFor(err error) int {
	switch {
	case err == nil,
		errors.Is(err, domain.ErrEmptyResponse):
		return http.StatusOK
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrFormClosed):
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}

func pageParam(c *ginext.Context) int {
	p, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		return 1
	}
	return p
}
