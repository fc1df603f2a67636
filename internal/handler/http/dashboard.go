package http

import (
	"net/http"

	"github.com/gajikita/payroll-backend-go/internal/handler/http/middleware"
	"github.com/gajikita/payroll-backend-go/internal/handler/http/response"
	dashboardService "github.com/gajikita/payroll-backend-go/internal/service/dashboard"
)

type DashboardHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService *dashboardService.DashboardService
}

func NewDashboardHandler(dashboardService *dashboardService.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// Overview implements DashboardHandler.
func (d *DashboardHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.CompanyID(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var periodKey *string
	if v := r.URL.Query().Get("period"); v != "" {
		periodKey = &v
	}

	overview, err := d.dashboardService.Overview(r.Context(), companyID, periodKey)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, overview)
}
