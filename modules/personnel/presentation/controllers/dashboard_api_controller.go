package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/oblik-ua/oblik-sdk/modules/personnel/presentation/mappers"
	"github.com/oblik-ua/oblik-sdk/modules/personnel/services"
)

type DashboardAPIController struct {
	dashboard *services.DashboardService
	basePath  string
}

func NewDashboardAPIController(dashboard *services.DashboardService) *DashboardAPIController {
	return &DashboardAPIController{dashboard: dashboard, basePath: "/personnel/api/dashboard"}
}

func (c *DashboardAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("/summary", c.Summary).Methods(http.MethodGet)
}

func (c *DashboardAPIController) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := c.dashboard.Summary(r.Context())
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "DASHBOARD_INTERNAL", "internal error")
		return
	}
	recent := make([]any, 0, len(summary.Recent))
	for _, p := range summary.Recent {
		recent = append(recent, mappers.PersonToViewModel(p))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total":    summary.Total,
		"byStatus": summary.ByStatus,
		"byUnit":   summary.ByUnit,
		"recent":   recent,
	})
}
