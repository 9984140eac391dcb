package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	rootPath     = "/"
	registerPath = "/register"
	loginPath    = "/login"
	logoutPath   = "/logout"
	journalPath  = "/journal"
	versionPath  = "/version"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without a session
	router.Group(func(r chi.Router) {
		r.Get(rootPath, h.indexPage)
		r.Get(registerPath, h.registerPage)
		r.Post(registerPath, h.register)
		r.Get(loginPath, h.loginPage)
		r.Post(loginPath, h.login)
		r.Post(logoutPath, h.logout)
		r.Get(versionPath, h.getServerVersion)
	})

	// journal routes, every one behind the session gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get(journalPath, h.journal)
		r.Post("/journal-entry", h.selectEntry)
		r.Post("/new-entry", h.newEntry)
		r.Post("/start-editing", h.startEditing)
		r.Post("/cancel-editing", h.cancelEditing)
		r.Post("/finish-editing", h.finishEditing)
		r.Post("/delete-entry", h.deleteEntry)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
