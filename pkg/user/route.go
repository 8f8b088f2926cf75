package user

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// Routes mounts the user and role endpoints on the given router
func Routes(r chi.Router, handle Handle) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", handle.GetUsers)
		r.Post("/", handle.CreateUser)

		r.Route("/username/{username}", func(r chi.Router) {
			r.Get("/", func(w http.ResponseWriter, req *http.Request) {
				handle.GetUserByUsername(w, req, chi.URLParam(req, "username"))
			})
			r.Delete("/", func(w http.ResponseWriter, req *http.Request) {
				handle.DeleteUserByUsername(w, req, chi.URLParam(req, "username"))
			})
			r.Post("/roles/{roleName}", func(w http.ResponseWriter, req *http.Request) {
				handle.AddRoleToUser(w, req, chi.URLParam(req, "username"), chi.URLParam(req, "roleName"))
			})
		})

		r.Route("/{uuid}", func(r chi.Router) {
			r.Get("/", func(w http.ResponseWriter, req *http.Request) {
				handle.GetUser(w, req, chi.URLParam(req, "uuid"))
			})
			r.Put("/", func(w http.ResponseWriter, req *http.Request) {
				handle.UpdateUser(w, req, chi.URLParam(req, "uuid"))
			})
			r.Delete("/", func(w http.ResponseWriter, req *http.Request) {
				handle.DeleteUser(w, req, chi.URLParam(req, "uuid"))
			})
		})
	})

	r.Route("/roles", func(r chi.Router) {
		r.Get("/", handle.GetRoles)
		r.Post("/", handle.CreateRole)
		r.Post("/batch", handle.CreateRoles)

		r.Get("/name/{name}", func(w http.ResponseWriter, req *http.Request) {
			handle.GetRoleByName(w, req, chi.URLParam(req, "name"))
		})
		r.Get("/{id}", func(w http.ResponseWriter, req *http.Request) {
			id, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 32)
			if err != nil {
				render.Status(req, http.StatusBadRequest)
				render.JSON(w, req, map[string]string{"error": "Invalid role ID"})
				return
			}
			handle.GetRole(w, req, int32(id))
		})
	})
}
