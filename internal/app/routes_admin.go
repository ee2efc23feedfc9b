// internal/app/routes_admin.go
package app

import (
	"github.com/go-chi/chi/v5"

	hh "weatherpro/internal/handlers/http"
	"weatherpro/internal/middleware"
)

// AdminRouter builds the /admin tree; mounted on the mux router by RegisterRoutes.
func AdminRouter(deps RouteDeps) chi.Router {
	ah := &hh.AdminHandler{Store: deps.Service.Store()}

	r := chi.NewRouter()
	r.Route("/admin", func(cr chi.Router) {
		cr.Use(middleware.AdminJWTAuth(deps.Admin.JWTSecret))
		cr.Get("/cache", ah.ListCache)
		cr.Delete("/cache/{city}", ah.InvalidateCache)
	})
	return r
}
