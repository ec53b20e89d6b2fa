package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"harborview/infras/otel"
	"harborview/internal/domains/report/service"
	"harborview/shared/constant"
	"harborview/transport/http/response"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/dashboard", handler.GetDashboard)
	})
}

// GetDashboard returns the admin dashboard statistics.
// @Summary Get dashboard statistics
// @Description Aggregate live statistics across rooms, bookings, guests, and dining reservations.
// @Tags Report
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.DashboardResponse] "Dashboard statistics"
// @Failure 500 {object} response.Error
// @Router /v1/reports/dashboard [get]
// @Security BearerAuth
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	dashboard, err := handler.service.Dashboard(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build dashboard")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dashboard built successfully")

	response.WithJSON(w, http.StatusOK, dashboard)
}
