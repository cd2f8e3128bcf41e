package summary

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/ai/summarize", h.Summarize)
}

type summarizeRequest struct {
	PatientID string `json:"patientId"`
}

func (h *Handler) Summarize(c echo.Context) error {
	var req summarizeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.PatientID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Patient ID required")
	}

	text, err := h.svc.Summarize(c.Request().Context(), req.PatientID)
	if errors.Is(err, ErrPatientNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Patient not found")
	}
	if err != nil {
		// Upstream detail stays server-side; clients get a generic failure.
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate summary").SetInternal(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"summary": text})
}
