package router

import "github.com/wb-go/wbf/ginext"

type Handler interface {
	Home(c *ginext.Context)
	Health(c *ginext.Context)

	ListFacilities(c *ginext.Context)
	NewFacility(c *ginext.Context)
	CreateFacility(c *ginext.Context)
	GetFacility(c *ginext.Context)
	EditFacility(c *ginext.Context)
	UpdateFacility(c *ginext.Context)

	ListVisitors(c *ginext.Context)
	NewVisitor(c *ginext.Context)
	CreateVisitor(c *ginext.Context)
	GetVisitor(c *ginext.Context)
	EditVisitor(c *ginext.Context)
	UpdateVisitor(c *ginext.Context)

	ListBookings(c *ginext.Context)
	NewBooking(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	EditBooking(c *ginext.Context)
	UpdateBooking(c *ginext.Context)
}

type section struct {
	path                                   string
	list, create, update, show, edit, form ginext.HandlerFunc
}

// InitRouter wires the console pages. limit, when not nil, guards form
// submissions.
func InitRouter(mode string, h Handler, limit ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	submit := []ginext.HandlerFunc{}
	if limit != nil {
		submit = append(submit, limit)
	}

	sections := []section{
		{"/facilities", h.ListFacilities, h.CreateFacility, h.UpdateFacility, h.GetFacility, h.EditFacility, h.NewFacility},
		{"/bookings", h.ListBookings, h.CreateBooking, h.UpdateBooking, h.GetBooking, h.EditBooking, h.NewBooking},
		{"/visitors", h.ListVisitors, h.CreateVisitor, h.UpdateVisitor, h.GetVisitor, h.EditVisitor, h.NewVisitor},
	}
	for _, s := range sections {
		g := router.Group(s.path)
		g.GET("", s.list)
		g.GET("/new", s.form)
		g.POST("", append(submit, s.create)...)
		g.GET("/:id", s.show)
		g.GET("/:id/edit", s.edit)
		g.POST("/:id", append(submit, s.update)...)
	}

	router.GET("/", h.Home)
	router.GET("/health", h.Health)

	return router
}
