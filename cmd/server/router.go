package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/andreluoliveira82/car-api/internal/api"
	apimiddleware "github.com/andreluoliveira82/car-api/internal/api/middleware"
)

// setupRouter builds the full route tree: public browsing and auth routes,
// authenticated self-service routes, and the admin section.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.Trace)

	authHandler := api.NewAuthHandler(app.userStore, app.tokenService, app.hasher)
	userHandler := api.NewUserHandler(app.userStore, app.hasher)
	brandHandler := api.NewBrandHandler(app.brandStore)
	carHandler := api.NewCarHandler(app.carStore, app.brandStore, app.userStore, app.rules)

	adminUserHandler := api.NewAdminUserHandler(app.userStore)
	adminBrandHandler := api.NewAdminBrandHandler(app.brandStore, app.rules)
	adminCarHandler := api.NewAdminCarHandler(app.carStore, app.brandStore, app.userStore, app.rules)

	authMiddleware := apimiddleware.NewAuthMiddleware(app.tokenService, app.userStore)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes.
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.Refresh)
		r.Post("/users", userHandler.Register)

		r.Get("/brands", brandHandler.List)
		r.Get("/brands/{id}", brandHandler.Get)

		r.Get("/cars", carHandler.List)
		r.Get("/cars/{id}", carHandler.Get)

		// Authenticated routes.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/users/me", userHandler.GetMe)
			r.Put("/users/me", userHandler.UpdateMe)
			r.Delete("/users/me", userHandler.DeleteMe)

			r.Post("/cars", carHandler.Create)
			r.Put("/cars/{id}", carHandler.Update)
			r.Delete("/cars/{id}", carHandler.Delete)
		})

		// Admin routes.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(authMiddleware.RequireAdmin)

			r.Get("/admin/users", adminUserHandler.List)
			r.Get("/admin/users/{id}", adminUserHandler.Get)
			r.Patch("/admin/users/{id}/activate", adminUserHandler.Activate)
			r.Patch("/admin/users/{id}/deactivate", adminUserHandler.Deactivate)
			r.Patch("/admin/users/{id}/role", adminUserHandler.ChangeRole)

			r.Post("/admin/brands", adminBrandHandler.Create)
			r.Put("/admin/brands/{id}", adminBrandHandler.Update)
			r.Patch("/admin/brands/{id}/activate", adminBrandHandler.Activate)
			r.Patch("/admin/brands/{id}/deactivate", adminBrandHandler.Deactivate)
			r.Delete("/admin/brands/{id}", adminBrandHandler.Delete)

			r.Post("/admin/cars", adminCarHandler.Create)
			r.Get("/admin/cars", adminCarHandler.List)
			r.Patch("/admin/cars/{id}/status", adminCarHandler.ChangeStatus)
			r.Patch("/admin/cars/{id}/deactivate", adminCarHandler.Deactivate)
			r.Delete("/admin/cars/{id}", adminCarHandler.Delete)
		})
	})

	r.Get("/health-check", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
