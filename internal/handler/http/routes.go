// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Only /api/version is public; every import route
// requires a bearer token.
func (h *Handler) Init() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)
	r.MethodNotAllowed(methodNotAllowed)

	r.Get("/api/version", h.getServerVersion)

	r.Route("/api/import", func(imports chi.Router) {
		// auth wraps endpoints only, so unknown methods still answer 404
		imports.Group(func(authed chi.Router) {
			authed.Use(h.auth)

			authed.With(h.withChecksum).Post("/", h.importFile)
			authed.Post("/ldap/groups", h.importDirectoryGroups)
			authed.Post("/ldap/users", h.importDirectoryUsers)
		})
	})

	return r
}
