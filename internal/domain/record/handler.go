package record

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
	api.POST("/health-records", h.CreateRecord)
	api.GET("/health-records/recent", h.RecentByHospital)
	api.GET("/health-records/patient/:patientId", h.PatientHistory)
	api.PATCH("/health-records/:id", h.UpdateRecord)
}

func (h *Handler) CreateRecord(c echo.Context) error {
	var r HealthRecord
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := h.svc.CreateRecord(c.Request().Context(), &r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, r)
}

func (h *Handler) RecentByHospital(c echo.Context) error {
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

	records, err := h.svc.RecentByHospital(c.Request().Context(), hospitalID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list recent records")
	}
	if records == nil {
		records = []*HealthRecord{}
	}
	return c.JSON(http.StatusOK, records)
}

func (h *Handler) PatientHistory(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("patientId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid patient id")
	}

	records, err := h.svc.PatientHistory(c.Request().Context(), patientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load patient history")
	}
	if records == nil {
		records = []*RecordWithRefs{}
	}
	return c.JSON(http.StatusOK, records)
}

func (h *Handler) UpdateRecord(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid record id")
	}

	var upd RecordUpdate
	if err := c.Bind(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	r, err := h.svc.UpdateRecord(c.Request().Context(), id, &upd)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if r == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Record not found")
	}
	return c.JSON(http.StatusOK, r)
}
