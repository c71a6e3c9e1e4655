package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/apiclient"
	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/domain"
	hmocks "github.com/ashokan1984/CorporatePassBookingReactApp/internal/handler/mocks"
	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func setupRouter(t *testing.T, strategy view.Strategy) (*hmocks.MockFacilitySvc, *hmocks.MockVisitorSvc, *hmocks.MockBookingSvc, http.Handler) {
	t.Helper()
	facilitySvc := hmocks.NewMockFacilitySvc(t)
	visitorSvc := hmocks.NewMockVisitorSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)

	h := NewHandler(facilitySvc, visitorSvc, bookingSvc, Options{PageSize: 5, Strategy: strategy}, newTestLogger(t))

	r := ginext.New("test")
	r.GET("/", h.Home)

	r.GET("/facilities", h.ListFacilities)
	r.GET("/facilities/new", h.NewFacility)
	r.POST("/facilities", h.CreateFacility)
	r.GET("/facilities/:id", h.GetFacility)
	r.GET("/facilities/:id/edit", h.EditFacility)
	r.POST("/facilities/:id", h.UpdateFacility)

	r.GET("/visitors", h.ListVisitors)
	r.GET("/visitors/:id", h.GetVisitor)
	r.POST("/visitors", h.CreateVisitor)

	r.GET("/bookings", h.ListBookings)
	r.GET("/bookings/new", h.NewBooking)
	r.POST("/bookings/:id", h.UpdateBooking)

	return facilitySvc, visitorSvc, bookingSvc, r
}

func facilities(n int) []domain.Facility {
	res := make([]domain.Facility, 0, n)
	for i := 1; i <= n; i++ {
		res = append(res, domain.Facility{
			ID:            domain.ID(fmt.Sprint(i)),
			Name:          fmt.Sprintf("Room %d", i),
			Type:          "Meeting",
			TotalCapacity: 10,
			Location:      "HQ",
			Amenities:     []string{"Wifi", "Projector"},
		})
	}
	return res
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func postForm(r http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Home(t *testing.T) {
	_, _, _, r := setupRouter(t, view.ReconcileRefetch)

	w := get(r, "/")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/facilities", w.Header().Get("Location"))
}

// --- Facilities ---

func TestHandler_ListFacilities_Success(t *testing.T) {
	facilitySvc, _, _, r := setupRouter(t, view.ReconcileRefetch)

	facilitySvc.EXPECT().List(mock.Anything).Return(facilities(6), nil)

	w := get(r, "/facilities")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Corporate Pass Booking")
	assert.Contains(t, body, "Room 5")
	assert.NotContains(t, body, "Room 6")
	assert.Contains(t, body, "Wifi, Projector")
	assert.Contains(t, body, `href="/facilities?page=2"`)
}

func TestHandler_ListFacilities_SecondPage(t *testing.T) {
	facilitySvc, _, _, r := setupRouter(t, view.ReconcileRefetch)

	facilitySvc.EXPECT().List(mock.Anything).Return(facilities(6), nil)

	w := get(r, "/facilities?page=1&step=next")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Room 6")
	assert.NotContains(t, w.Body.String(), "Room 1<")
}

func TestHandler_ListFacilities_Empty(t *testing.T) {
	facilitySvc, _, _, r := setupRouter(t, view.ReconcileRefetch)

	facilitySvc.EXPECT().List(mock.Anything).Return(nil, nil)

	w := get(r, "/facilities")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No facilities found.")
	assert.NotContains(t, w.Body.String(), `class="pagination"`)
}

func TestHandler_ListFacilities_LoadError(t *testing.T) {
	facilitySvc, _, _, r := setupRouter(t, view.ReconcileRefetch)

	facilitySvc.EXPECT().List(mock.Anything).Return(nil, domain.ErrUnavailable)

	w := get(r, "/facilities")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to load facility list")
}

func TestHandler_NewFacility(t *testing.T) {
	facilitySvc, _, _, r := setupRouter(t, view.ReconcileRefetch)

	facilitySvc.EXPECT().List(mock.Anything).Return(facilities(1), nil)

	w := get(r, "/facilities/new")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Add Facility")
	assert.Contains(t, w.Body.String(), `action="/facilities?page=1"`)
}

func TestHandler_CreateFacility_Success(t *testing.T) {
	facilitySvc, _, _, r := setupRouter(t, view.ReconcileRefetch)

	facilitySvc.EXPECT().List(mock.Anything).Return(facilities(2), nil)
	facilitySvc.EXPECT().Create(mock.Anything, domain.FacilityInput{
		Name:          "Gym",
		Type:          "Sport",
		TotalCapacity: 30,
		Location:      "Basement",
		Amenities:     []string{"Showers", "Lockers"},
	}).Return(domain.Facility{ID: "3", Name: "Gym"}, nil)

	w := postForm(r, "/facilities?page=1", url.Values{
		"name":          {"Gym"},
		"type":          {"Sport"},
		"totalCapacity": {"30"},
		"location":      {"Basement"},
		"amenities":     {"Showers, Lockers"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Facility created successfully")
	assert.NotContains(t, w.Body.String(), `class="editor"`)
}

func TestHandler_CreateFacility_BindError(t *testing.T) {
	facilitySvc, _, _, r := setupRouter(t, view.ReconcileRefetch)

	facilitySvc.EXPECT().List(mock.Anything).Return(facilities(1), nil)

	w := postForm(r, "/facilities", url.Values{
		"type":     {"Sport"},
		"location": {"Basement"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to create facility: name is required")
	assert.Contains(t, w.Body.String(), `value="Basement"`)
}

func TestHandler_CreateFacility_Rejected(t *testing.T) {
	facilitySvc, _, _, r := setupRouter(t, view.ReconcileRefetch)

	facilitySvc.EXPECT().List(mock.Anything).Return(facilities(1), nil)
	facilitySvc.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.Facility{}, domain.ErrRejected)

	w := postForm(r, "/facilities", url.Values{
		"name":          {"Gym"},
		"type":          {"Sport"},
		"totalCapacity": {"30"},
		"location":      {"Basement"},
	})

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to create facility")
	assert.Contains(t, w.Body.String(), `value="Gym"`)
}

func TestHandler_EditFacility_Prefills(t *testing.T) {
	facilitySvc, _, _, r := setupRouter(t, view.ReconcileRefetch)

	facilitySvc.EXPECT().List(mock.Anything).Return(facilities(3), nil)

	w := get(r, "/facilities/2/edit")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Edit Facility")
	assert.Contains(t, body, `value="Room 2"`)
	assert.Contains(t, body, `action="/facilities/2?page=1"`)
}

func TestHandler_EditFacility_NotFound(t *testing.T) {
	facilitySvc, _, _, r := setupRouter(t, view.ReconcileRefetch)

	facilitySvc.EXPECT().List(mock.Anything).Return(facilities(3), nil)

	w := get(r, "/facilities/99/edit")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotContains(t, w.Body.String(), `class="editor"`)
}

func TestHandler_UpdateFacility_Patch(t *testing.T) {
	facilitySvc, _, _, r := setupRouter(t, view.ReconcilePatch)

	facilitySvc.EXPECT().List(mock.Anything).Return(facilities(3), nil).Once()
	facilitySvc.EXPECT().Update(mock.Anything, domain.ID("2"), mock.Anything).
		Return(domain.Facility{ID: "2", Name: "Board Room", Amenities: []string{}}, nil)

	w := postForm(r, "/facilities/2", url.Values{
		"name":          {"Board Room"},
		"type":          {"Meeting"},
		"totalCapacity": {"8"},
		"location":      {"HQ"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Facility updated successfully")
	assert.Contains(t, body, "Board Room")
	assert.NotContains(t, body, "Room 2<")
}

func TestHandler_GetFacility_Detail(t *testing.T) {
	facilitySvc, _, _, r := setupRouter(t, view.ReconcileRefetch)

	facilitySvc.EXPECT().List(mock.Anything).Return(facilities(3), nil)
	facilitySvc.EXPECT().Get(mock.Anything, domain.ID("3")).Return(domain.Facility{
		ID: "3", Name: "Auditorium", Location: "Ground floor",
	}, nil)

	w := get(r, "/facilities/3")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `class="modal"`)
	assert.Contains(t, w.Body.String(), "Ground floor")
}

func TestHandler_GetFacility_RemoteNotFound(t *testing.T) {
	facilitySvc, _, _, r := setupRouter(t, view.ReconcileRefetch)

	facilitySvc.EXPECT().List(mock.Anything).Return(facilities(3), nil)
	facilitySvc.EXPECT().Get(mock.Anything, domain.ID("42")).
		Return(domain.Facility{}, fmt.Errorf("get facility 42: %w", &apiclient.StatusError{
			Method: http.MethodGet, Path: "Facility/GetById/42", Status: http.StatusNotFound,
		}))

	w := get(r, "/facilities/42")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "the record no longer exists")
	assert.NotContains(t, w.Body.String(), `class="modal"`)
}

// --- Visitors ---

func TestHandler_GetVisitor_ShowsBookings(t *testing.T) {
	_, visitorSvc, _, r := setupRouter(t, view.ReconcileRefetch)

	visitorSvc.EXPECT().List(mock.Anything).Return([]domain.Visitor{{ID: "7", Name: "Ann"}}, nil)
	visitorSvc.EXPECT().Get(mock.Anything, domain.ID("7")).Return(domain.Visitor{ID: "7", Name: "Ann", Email: "ann@corp.example"}, nil)
	visitorSvc.EXPECT().Bookings(mock.Anything, domain.ID("7")).Return([]domain.Booking{
		{ID: "b1", FacilityID: "1", VisitorID: "7", Quantity: 3, BookingDateTime: "2026-10-20T09:30"},
	}, nil)

	w := get(r, "/visitors/7")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "ann@corp.example")
	assert.Contains(t, body, "20 Oct 2026 09:30")
}

func TestHandler_CreateVisitor_EmptyResponse(t *testing.T) {
	_, visitorSvc, _, r := setupRouter(t, view.ReconcileRefetch)

	visitorSvc.EXPECT().List(mock.Anything).Return([]domain.Visitor{{ID: "7", Name: "Ann"}}, nil)
	visitorSvc.EXPECT().Create(mock.Anything, domain.VisitorInput{Name: "Bob", Email: "bob@corp.example", PhoneNumber: "555"}).
		Return(domain.Visitor{}, domain.ErrEmptyResponse)

	w := postForm(r, "/visitors", url.Values{
		"name":        {"Bob"},
		"email":       {"bob@corp.example"},
		"phoneNumber": {"555"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "notice warning")
	assert.NotContains(t, w.Body.String(), `class="editor"`)
}

// --- Bookings ---

func TestHandler_ListBookings_Enriched(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t, view.ReconcileRefetch)

	bookingSvc.EXPECT().List(mock.Anything).Return([]domain.Booking{
		{ID: "b1", FacilityID: "1", VisitorID: "7", Quantity: 2, BookingDateTime: "2026-10-20T09:30"},
	}, nil)
	bookingSvc.EXPECT().Catalog(mock.Anything).Return(domain.Catalog{
		Facilities: []domain.Facility{{ID: "1", Name: "Squash Court"}},
		Visitors:   []domain.Visitor{{ID: "7", Name: "Ann"}},
	}, nil)

	w := get(r, "/bookings")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Squash Court")
	assert.Contains(t, body, "<td>Ann</td>")
}

func TestHandler_NewBooking_CatalogError(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t, view.ReconcileRefetch)

	bookingSvc.EXPECT().List(mock.Anything).Return(nil, nil)
	bookingSvc.EXPECT().Catalog(mock.Anything).Return(domain.Catalog{}, domain.ErrUnavailable)

	w := get(r, "/bookings/new")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Failed to load facilities and visitors")
	assert.Contains(t, body, `name="facilityId" value=""`)
}

func TestHandler_UpdateBooking_ValidationError(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t, view.ReconcileRefetch)

	bookingSvc.EXPECT().List(mock.Anything).Return([]domain.Booking{{ID: "b1", FacilityID: "1", VisitorID: "7", Quantity: 2}}, nil)
	bookingSvc.EXPECT().Catalog(mock.Anything).Return(domain.Catalog{}, nil)

	w := postForm(r, "/bookings/b1", url.Values{
		"facilityId":      {"1"},
		"visitorId":       {"7"},
		"quantity":        {"0"},
		"bookingDateTime": {"2026-10-20T09:30"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to update booking: quantity is required")
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{domain.ErrEmptyResponse, http.StatusOK},
		{fmt.Errorf("x: %w", domain.ErrValidation), http.StatusBadRequest},
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrFormClosed, http.StatusConflict},
		{domain.ErrUnavailable, http.StatusBadGateway},
		{domain.ErrRejected, http.StatusBadGateway},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), "%v", tt.err)
	}
}

type fixedStatus domain.APIStatus

func (s fixedStatus) Status() domain.APIStatus { return domain.APIStatus(s) }

func TestHandler_Health(t *testing.T) {
	tests := []struct {
		name   string
		status StatusReporter
		want   string
	}{
		{"no probe", nil, `{"status":"ok"}`},
		{"not checked", fixedStatus{}, `{"status":"ok","api":"unknown"}`},
		{
			"down",
			fixedStatus{Checked: true, LastCheck: time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC), LastError: "refused"},
			`{"status":"ok","api":"down","api_error":"refused","api_checked_at":"2026-10-19T08:00:00Z"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(nil, nil, nil, Options{API: tt.status}, newTestLogger(t))
			r := ginext.New("test")
			r.GET("/health", h.Health)

			w := get(r, "/health")

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())
		})
	}
}
