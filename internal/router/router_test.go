package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

// stubHandler answers every route with its own name.
type stubHandler struct{}

func reply(name string) func(c *ginext.Context) {
	return func(c *ginext.Context) { c.String(http.StatusOK, name+":"+c.Param("id")) }
}

func (stubHandler) Home(c *ginext.Context)           { reply("home")(c) }
func (stubHandler) Health(c *ginext.Context)         { reply("health")(c) }
func (stubHandler) ListFacilities(c *ginext.Context) { reply("list-facilities")(c) }
func (stubHandler) NewFacility(c *ginext.Context)    { reply("new-facility")(c) }
func (stubHandler) CreateFacility(c *ginext.Context) { reply("create-facility")(c) }
func (stubHandler) GetFacility(c *ginext.Context)    { reply("get-facility")(c) }
func (stubHandler) EditFacility(c *ginext.Context)   { reply("edit-facility")(c) }
func (stubHandler) UpdateFacility(c *ginext.Context) { reply("update-facility")(c) }
func (stubHandler) ListVisitors(c *ginext.Context)   { reply("list-visitors")(c) }
func (stubHandler) NewVisitor(c *ginext.Context)     { reply("new-visitor")(c) }
func (stubHandler) CreateVisitor(c *ginext.Context)  { reply("create-visitor")(c) }
func (stubHandler) GetVisitor(c *ginext.Context)     { reply("get-visitor")(c) }
func (stubHandler) EditVisitor(c *ginext.Context)    { reply("edit-visitor")(c) }
func (stubHandler) UpdateVisitor(c *ginext.Context)  { reply("update-visitor")(c) }
func (stubHandler) ListBookings(c *ginext.Context)   { reply("list-bookings")(c) }
func (stubHandler) NewBooking(c *ginext.Context)     { reply("new-booking")(c) }
func (stubHandler) CreateBooking(c *ginext.Context)  { reply("create-booking")(c) }
func (stubHandler) GetBooking(c *ginext.Context)     { reply("get-booking")(c) }
func (stubHandler) EditBooking(c *ginext.Context)    { reply("edit-booking")(c) }
func (stubHandler) UpdateBooking(c *ginext.Context)  { reply("update-booking")(c) }

func TestInitRouter_Routes(t *testing.T) {
	r := InitRouter("test", stubHandler{}, nil)

	tests := []struct {
		method, target, want string
	}{
		{http.MethodGet, "/", "home:"},
		{http.MethodGet, "/facilities", "list-facilities:"},
		{http.MethodGet, "/facilities/new", "new-facility:"},
		{http.MethodPost, "/facilities", "create-facility:"},
		{http.MethodGet, "/facilities/4", "get-facility:4"},
		{http.MethodGet, "/facilities/4/edit", "edit-facility:4"},
		{http.MethodPost, "/facilities/4", "update-facility:4"},
		{http.MethodGet, "/visitors/9", "get-visitor:9"},
		{http.MethodPost, "/bookings", "create-booking:"},
		{http.MethodGet, "/bookings/new", "new-booking:"},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, nil))
		assert.Equal(t, http.StatusOK, w.Code, "%s %s", tt.method, tt.target)
		assert.Equal(t, tt.want, w.Body.String(), "%s %s", tt.method, tt.target)
	}
}

func TestInitRouter_LimitGuardsSubmissions(t *testing.T) {
	deny := func(c *ginext.Context) { c.AbortWithStatus(http.StatusTooManyRequests) }
	r := InitRouter("test", stubHandler{}, deny)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/visitors", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/visitors", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInitRouter_Health(t *testing.T) {
	r := InitRouter("test", stubHandler{}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "health:", w.Body.String())
}
