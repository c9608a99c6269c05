package handlers

import (
	"net/http"

	"github.com/Dias221467/Birthday_Wall/internal/database"
	"github.com/Dias221467/Birthday_Wall/pkg/middleware"
	"github.com/gorilla/mux"
)

// Routes bundles the handlers served by the API.
type Routes struct {
	DB        database.Provider
	Wishes    *WishHandler
	Slides    *SlideHandler
	Uploads   *UploadHandler
	Status    *StatusHandler
	UploadDir string
}

// NewRouter wires every route. Resource routes acquire the database before their handler runs.
func NewRouter(rt Routes) *mux.Router {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "Not found"})
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
	})

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", rt.Status.HealthHandler).Methods("GET")
	api.HandleFunc("/wishes/live", rt.Status.LiveHandler).Methods("GET")
	api.HandleFunc("/uploads", rt.Uploads.UploadImageHandler).Methods("POST")

	// Wish and slide routes acquire the database first
	withDB := middleware.RequireDatabase(rt.DB)
	data := func(h http.HandlerFunc) http.Handler { return withDB(h) }
	api.Handle("/wishes", data(rt.Wishes.GetWishesHandler)).Methods("GET")
	api.Handle("/wishes", data(rt.Wishes.CreateWishHandler)).Methods("POST")
	api.Handle("/wishes/{id}", data(rt.Wishes.LikeWishHandler)).Methods("PATCH")
	api.Handle("/slides", data(rt.Slides.GetSlidesHandler)).Methods("GET")
	api.Handle("/slides", data(rt.Slides.CreateSlideHandler)).Methods("POST")
	api.Handle("/stats", data(rt.Status.StatsHandler)).Methods("GET")

	router.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir(rt.UploadDir))))

	router.Use(middleware.LoggingMiddleware, middleware.Recover)
	return router
}
