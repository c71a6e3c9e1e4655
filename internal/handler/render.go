package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/domain"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = map[string]*template.Template{
	"facilities": mustPage("facilities"),
	"visitors":   mustPage("visitors"),
	"bookings":   mustPage("bookings"),
}

var funcs = template.FuncMap{
	"amenities":     domain.FormatAmenities,
	"when":          displayDateTime,
	"datetimeInput": inputDateTime,
}

func mustPage(name string) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).ParseFS(templateFS,
		"templates/layout.html",
		"templates/partials.html",
		"templates/"+name+".html",
	))
}

// render executes a page into a buffer before writing it. Every page is its
// own template set because each one defines "content", so gin's single
// LoadHTMLGlob set cannot hold them.
func (h *Handler) render(c *ginext.Context, status int, page string, data any) {
	tmpl, ok := pages[page]
	if !ok {
		h.renderFailed(c, fmt.Errorf("unknown page %q", page))
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		h.renderFailed(c, err)
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

func (h *Handler) renderFailed(c *ginext.Context, err error) {
	c.Set("error", err.Error())
	h.logger.LogAttrs(c.Request.Context(), logger.ErrorLevel, "failed to render page",
		logger.String("path", c.Request.URL.Path),
		logger.String("error", err.Error()),
	)
	c.String(http.StatusInternalServerError, "internal server error")
}

var dateTimeLayouts = []string{
	domain.BookingDateTimeLayout,
	"2006-01-02T15:04:05",
	time.RFC3339,
}

func parseDateTime(s string) (time.Time, bool) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func displayDateTime(s string) string {
	t, ok := parseDateTime(s)
	if !ok {
		return s
	}
	return t.Format("02 Jan 2006 15:04")
}

// inputDateTime formats s for a datetime-local input.
func inputDateTime(s string) string {
	t, ok := parseDateTime(s)
	if !ok {
		return s
	}
	return t.Format(domain.BookingDateTimeLayout)
}
