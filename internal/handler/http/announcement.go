package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gajikita/payroll-backend-go/internal/domain/announcement"
	"github.com/gajikita/payroll-backend-go/internal/handler/http/middleware"
	"github.com/gajikita/payroll-backend-go/internal/handler/http/response"
	announcementService "github.com/gajikita/payroll-backend-go/internal/service/announcement"
)

type AnnouncementHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListVisible(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AnnouncementHandlerImpl struct {
	announcementService *announcementService.AnnouncementService
}

func NewAnnouncementHandler(announcementService *announcementService.AnnouncementService) AnnouncementHandler {
	return &AnnouncementHandlerImpl{announcementService: announcementService}
}

// Create implements AnnouncementHandler.
func (a *AnnouncementHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.CompanyID(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	userID, err := middleware.UserID(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req announcement.CreateAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create announcement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := a.announcementService.Create(r.Context(), companyID, userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Announcement created successfully", created)
}

// ListVisible implements AnnouncementHandler.
func (a *AnnouncementHandlerImpl) ListVisible(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.CompanyID(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	announcements, err := a.announcementService.ListVisible(r.Context(), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, announcements)
}

// ListAll implements AnnouncementHandler.
func (a *AnnouncementHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.CompanyID(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	announcements, err := a.announcementService.ListAll(r.Context(), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, announcements)
}

// GetByID implements AnnouncementHandler.
func (a *AnnouncementHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.CompanyID(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Announcement ID is required", nil)
		return
	}

	result, err := a.announcementService.GetByID(r.Context(), id, companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements AnnouncementHandler.
func (a *AnnouncementHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.CompanyID(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Announcement ID is required", nil)
		return
	}

	var req announcement.UpdateAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update announcement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := a.announcementService.Update(r.Context(), companyID, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Announcement updated successfully", nil)
}

// Delete implements AnnouncementHandler.
func (a *AnnouncementHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.CompanyID(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Announcement ID is required", nil)
		return
	}

	if err := a.announcementService.Delete(r.Context(), id, companyID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Announcement deleted successfully", nil)
}
