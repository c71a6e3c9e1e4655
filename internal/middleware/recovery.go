package middleware

import (
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const panicPage = `<!DOCTYPE html><html><head><title>Corporate Pass Booking</title></head>` +
	`<body><h2>Something went wrong</h2><p><a href="/facilities">Back to facilities</a></p></body></html>`

func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered",
					logger.Any("error", err),
					logger.String("request_id", RequestIDFrom(c)),
					logger.String("stack", string(debug.Stack())),
				)

				if wantsJSON(c) {
					c.AbortWithStatusJSON(http.StatusInternalServerError,
						ginext.H{"error": "internal server error"},
					)
					return
				}
				c.Data(http.StatusInternalServerError, "text/html; charset=utf-8", []byte(panicPage))
				c.Abort()
			}
		}()

		c.Next()
	}
}

func wantsJSON(c *ginext.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}
