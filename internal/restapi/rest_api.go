// Package restapi serves trip generation and fare lookups over HTTP.
package restapi

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"tripgen.codingchallenge.net/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter *RateLimitMiddleware
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
	}
}

// Handler returns the router wrapped in the full middleware chain.
func (api *RestAPI) Handler() http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)

	var handler http.Handler = router
	handler = api.rateLimiter.Handler(handler)
	handler = CompressionMiddleware(handler)
	handler = api.WithSecurityHeaders(handler)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	handler = RequestIDMiddleware(handler)
	return handler
}

// Close releases the rate limiter's background cleanup.
func (api *RestAPI) Close() {
	api.rateLimiter.Stop()
}
