package adaptor

import (
	"net/http"

	"campus-delivery/internal/usecase"
	"campus-delivery/pkg/utils"

	"go.uber.org/zap"
)

type ReportHandler struct {
	service usecase.ReportService
	log     *zap.Logger
}

func NewReportHandler(service usecase.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log.With(zap.String("handler", "report")),
	}
}

// AdminDashboard handles GET /api/admin/dashboard (admin only)
func (h *ReportHandler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.AdminDashboard(r.Context())
	if err != nil {
		respondServiceError(h.log, w, err, "admin dashboard")
		return
	}

	utils.ResponseSuccess(w, "success", dashboard)
}

// VendorAnalytics handles GET /api/vendor/analytics (vendor only)
func (h *ReportHandler) VendorAnalytics(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	analytics, err := h.service.VendorAnalytics(r.Context(), userID)
	if err != nil {
		respondServiceError(h.log, w, err, "vendor analytics")
		return
	}

	utils.ResponseSuccess(w, "success", analytics)
}
