package note

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/notes", h.CreateNote)
	api.GET("/notes/record/:recordId", h.ListByRecord)
	api.GET("/notes/patient/:patientId", h.ListByPatient)
}

func (h *Handler) CreateNote(c echo.Context) error {
	var n DoctorNote
	if err := c.Bind(&n); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := h.svc.CreateNote(c.Request().Context(), &n); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, n)
}

func (h *Handler) ListByRecord(c echo.Context) error {
	recordID, err := uuid.Parse(c.Param("recordId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid record id")
	}
	notes, err := h.svc.NotesForRecord(c.Request().Context(), recordID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list notes")
	}
	if notes == nil {
		notes = []*DoctorNote{}
	}
	return c.JSON(http.StatusOK, notes)
}

func (h *Handler) ListByPatient(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("patientId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid patient id")
	}
	notes, err := h.svc.NotesForPatient(c.Request().Context(), patientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list notes")
	}
	if notes == nil {
		notes = []*DoctorNote{}
	}
	return c.JSON(http.StatusOK, notes)
}
