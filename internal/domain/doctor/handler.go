package doctor

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/arogya/arogya/internal/domain/hospital"
)

type Handler struct {
	svc       *Service
	hospitals *hospital.Service
}

func NewHandler(svc *Service, hospitals *hospital.Service) *Handler {
	return &Handler{svc: svc, hospitals: hospitals}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/doctors/stats", h.GetStats)
	api.GET("/doctors/hospital", h.ListByHospital)
}

func (h *Handler) GetStats(c echo.Context) error {
	stats, err := h.svc.GetStats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load doctor stats")
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) ListByHospital(c echo.Context) error {
	idOrCode := c.QueryParam("hospitalId")
	if idOrCode == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "hospitalId is required")
	}

	hospitalID, err := h.hospitals.ResolveID(c.Request().Context(), idOrCode)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to resolve hospital")
	}
	if hospitalID == uuid.Nil {
		return echo.NewHTTPError(http.StatusNotFound, "Hospital not found")
	}

	doctors, err := h.svc.ListByHospital(c.Request().Context(), hospitalID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list doctors")
	}
	if doctors == nil {
		doctors = []*Doctor{}
	}
	return c.JSON(http.StatusOK, doctors)
}
