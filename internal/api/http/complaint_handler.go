package http

import (
	"net/http"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

type ComplaintHandler struct {
	complaintSvc service.ComplaintService
}

func NewComplaintHandler(complaintSvc service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaintSvc: complaintSvc}
}

type complaintRequest struct {
	Subject  string                   `json:"subject"`
	Message  string                   `json:"message"`
	Priority domain.ComplaintPriority `json:"priority"`
}

func (h *ComplaintHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	var req complaintRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Subject == "" || req.Message == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "subject and message are required", Code: "BAD_REQUEST"})
		return
	}

	complaint, err := h.complaintSvc.CreateComplaint(r.Context(), userID, req.Subject, req.Message, req.Priority)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, complaint)
}

func (h *ComplaintHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	complaints, err := h.complaintSvc.ListComplaints(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, complaints)
}

func (h *ComplaintHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	complaintID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid complaint id", Code: "BAD_REQUEST"})
		return
	}

	var req complaintRequest
	if !decodeBody(w, r, &req) {
		return
	}

	complaint, err := h.complaintSvc.UpdateComplaint(r.Context(), userID, complaintID, service.ComplaintUpdate{
		Subject:  req.Subject,
		Message:  req.Message,
		Priority: req.Priority,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, complaint)
}

func (h *ComplaintHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	complaintID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid complaint id", Code: "BAD_REQUEST"})
		return
	}

	if err := h.complaintSvc.DeleteComplaint(r.Context(), userID, complaintID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
