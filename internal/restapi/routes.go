package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// rateLimitAndValidateAPIKey checks the key first so unknown keys never get a limiter.
func rateLimitAndValidateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	var next http.Handler = http.HandlerFunc(finalHandler)
	if api.rateLimiter != nil {
		next = api.rateLimiter(next)
	}
	return validateAPIKey(api, next.ServeHTTP)
}

// handle registers an API endpoint. The route template, not the request path, labels its metrics.
func (api *RestAPI) handle(router *httprouter.Router, route string, h handlerFunc) {
	router.Handler(http.MethodGet, route, instrumentRoute(route, rateLimitAndValidateAPIKey(api, h)))
}

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	api.handle(router, "/api/brands.json", api.brandsHandler)
	api.handle(router, "/api/brands/:brand/fuels.json", api.fuelsHandler)
	api.handle(router, "/api/brands/:brand/models.json", api.modelsHandler)
	api.handle(router, "/api/brands/:brand/valuation.json", api.valuationHandler)
	api.handle(router, "/api/schedule.json", api.scheduleHandler)
	api.handle(router, "/api/current-time.json", api.currentTimeHandler)

	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	router.NotFound = http.HandlerFunc(api.sendNotFound)
	router.MethodNotAllowed = http.HandlerFunc(api.methodNotAllowedResponse)
}

// Handler builds the full middleware stack around router.
func (api *RestAPI) Handler(router *httprouter.Router) http.Handler {
	var handler http.Handler = router
	handler = CompressionMiddleware(handler)
	handler = api.WithSecurityHeaders(handler)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	return handler
}
