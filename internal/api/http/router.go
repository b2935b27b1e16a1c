package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"library-of-things-backend/internal/security"
	"library-of-things-backend/internal/service"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth   *AuthHandler
	User   *UserHandler
	Item   *ItemHandler
	Rental *RentalHandler
	Review *ReviewHandler
}

func NewHandlers(
	authSvc service.AuthService,
	userSvc service.UserService,
	itemSvc service.ItemService,
	rentalSvc service.RentalService,
	reviewSvc service.ReviewService,
) Handlers {
	return Handlers{
		Auth:   NewAuthHandler(authSvc),
		User:   NewUserHandler(userSvc, reviewSvc),
		Item:   NewItemHandler(itemSvc, reviewSvc),
		Rental: NewRentalHandler(rentalSvc),
		Review: NewReviewHandler(reviewSvc),
	}
}

// NewRouter wires all routes. Everything under the protected subrouter
// requires a valid bearer token; the rest is public.
func NewRouter(h Handlers, tokens security.TokenManager) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestID)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	router.HandleFunc("/auth/register", h.Auth.Register).Methods("POST")
	router.HandleFunc("/auth/token", h.Auth.Token).Methods("POST")

	router.HandleFunc("/users/{id}/profile", h.User.Profile).Methods("GET")
	router.HandleFunc("/users/{id}/reviews", h.User.Reviews).Methods("GET")

	router.HandleFunc("/categories", h.Item.Categories).Methods("GET")

	// nearby must be registered before the {id} route or mux will try
	// to parse "nearby" as an item id.
	router.HandleFunc("/items/nearby", h.Item.Nearby).Methods("GET")
	router.HandleFunc("/items", h.Item.List).Methods("GET")
	router.HandleFunc("/items/{id}", h.Item.Get).Methods("GET")
	router.HandleFunc("/items/{id}/reviews", h.Item.Reviews).Methods("GET")

	protected := router.NewRoute().Subrouter()
	protected.Use(Authenticate(tokens))

	protected.HandleFunc("/users/me", h.User.Me).Methods("GET")

	protected.HandleFunc("/items", h.Item.Create).Methods("POST")
	protected.HandleFunc("/items/{id}", h.Item.Update).Methods("PUT")

	protected.HandleFunc("/rentals", h.Rental.Create).Methods("POST")
	protected.HandleFunc("/rentals/incoming", h.Rental.Incoming).Methods("GET")
	protected.HandleFunc("/rentals/outgoing", h.Rental.Outgoing).Methods("GET")
	protected.HandleFunc("/rentals/{id}", h.Rental.Get).Methods("GET")
	protected.HandleFunc("/rentals/{id}/status", h.Rental.UpdateStatus).Methods("PATCH")

	protected.HandleFunc("/reviews", h.Review.Create).Methods("POST")

	return router
}
