package http

import (
	"net/http"
	"strings"

	"carrental-backend/internal/catalog"
	"carrental-backend/internal/domain"
)

type CarHandler struct {
	cat catalog.Catalog
}

func NewCarHandler(cat catalog.Catalog) *CarHandler {
	return &CarHandler{cat: cat}
}

// List returns the fleet, optionally filtered with ?kind=electric or
// ?kind=mechanical.
func (h *CarHandler) List(w http.ResponseWriter, r *http.Request) {
	var kind domain.CarKind
	switch strings.ToLower(r.URL.Query().Get("kind")) {
	case "":
		kind = ""
	case "electric":
		kind = domain.CarKindElectric
	case "mechanical":
		kind = domain.CarKindMechanical
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "kind must be electric or mechanical", Code: "BAD_REQUEST"})
		return
	}

	cars, err := h.cat.ListCars(r.Context(), kind)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cars)
}

func (h *CarHandler) Get(w http.ResponseWriter, r *http.Request) {
	carID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid car id", Code: "BAD_REQUEST"})
		return
	}

	car, err := h.cat.GetCar(r.Context(), carID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}
