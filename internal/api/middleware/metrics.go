package middleware

import (
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/blog-app/blog-api/internal/api/metrics"
)

// Metrics records request count, latency and sizes per route pattern.
// Errors are handed to the HTTP error handler before the status is read so
// the observed code is the one the client receives. Probe and scrape
// endpoints are not measured.
func Metrics(reg prometheus.Registerer) (echo.MiddlewareFunc, error) {
	return echoprometheus.MiddlewareConfig{
		Namespace:  metrics.Namespace,
		Subsystem:  "http",
		Registerer: reg,
		Skipper: func(c echo.Context) bool {
			p := c.Path()
			return p == "/metrics" || strings.HasPrefix(p, "/health")
		},
		AfterNext: func(c echo.Context, err error) {
			if err != nil {
				c.Error(err)
			}
		},
		DoNotUseRequestPathFor404: true,
	}.ToMiddleware()
}
