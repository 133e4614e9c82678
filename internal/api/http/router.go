package http

import (
	"net/http"

	"carrental-backend/internal/catalog"
	"carrental-backend/internal/security"
	"carrental-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// RouterDeps carries everything the HTTP layer needs.
type RouterDeps struct {
	AuthSvc      service.AuthService
	UserSvc      service.UserService
	RentalSvc    service.RentalService
	ComplaintSvc service.ComplaintService
	Catalog      catalog.Catalog
	TokenManager security.TokenManager
	CORSOrigins  []string
}

// NewRouter builds the full route table. Auth and catalog routes are public;
// everything else sits behind the access-token middleware.
func NewRouter(deps RouterDeps) http.Handler {
	authHandler := NewAuthHandler(deps.AuthSvc)
	userHandler := NewUserHandler(deps.UserSvc)
	rentalHandler := NewRentalHandler(deps.RentalSvc)
	carHandler := NewCarHandler(deps.Catalog)
	complaintHandler := NewComplaintHandler(deps.ComplaintSvc)

	r := mux.NewRouter()
	r.Use(RequestLogger)

	r.HandleFunc("/", welcome).Methods(http.MethodGet)
	r.HandleFunc("/health", health).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/cars", carHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/cars/{id:[0-9]+}", carHandler.Get).Methods(http.MethodGet)

	// Authenticated
	auth := api.NewRoute().Subrouter()
	auth.Use(AuthMiddleware(deps.TokenManager))

	auth.HandleFunc("/users/me", userHandler.GetProfile).Methods(http.MethodGet)
	auth.HandleFunc("/users/{id:[0-9]+}", userHandler.UpdateProfile).Methods(http.MethodPut)
	auth.HandleFunc("/users/{id:[0-9]+}", userHandler.DeleteAccount).Methods(http.MethodDelete)

	auth.HandleFunc("/rentals", rentalHandler.Create).Methods(http.MethodPost)
	auth.HandleFunc("/rentals", rentalHandler.List).Methods(http.MethodGet)
	auth.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Get).Methods(http.MethodGet)
	auth.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Update).Methods(http.MethodPut)
	auth.HandleFunc("/rentals/{id:[0-9]+}/cancel", rentalHandler.Cancel).Methods(http.MethodPut)

	auth.HandleFunc("/complaints", complaintHandler.Create).Methods(http.MethodPost)
	auth.HandleFunc("/complaints", complaintHandler.List).Methods(http.MethodGet)
	auth.HandleFunc("/complaints/{id:[0-9]+}", complaintHandler.Update).Methods(http.MethodPut)
	auth.HandleFunc("/complaints/{id:[0-9]+}", complaintHandler.Delete).Methods(http.MethodDelete)

	c := cors.New(cors.Options{
		AllowedOrigins:   deps.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	return c.Handler(r)
}

func welcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to the Car Rental API"})
}

func health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
