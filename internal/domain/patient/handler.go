package patient

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/arogya/arogya/internal/domain/record"
	"github.com/arogya/arogya/pkg/pagination"
)

// RecordSource supplies the clinical history attached to profile reads.
type RecordSource interface {
	PatientHistory(ctx context.Context, patientID uuid.UUID) ([]*record.RecordWithRefs, error)
}

type Handler struct {
	svc     *Service
	records RecordSource
}

func NewHandler(svc *Service, records RecordSource) *Handler {
	return &Handler{svc: svc, records: records}
}

// RegisterRoutes splits routes between the general authenticated group and
// the staff-only group: patients manage their own profile, staff search and
// list the registry.
func (h *Handler) RegisterRoutes(api, staff *echo.Group) {
	api.GET("/patients/me", h.GetMe)
	api.PATCH("/patients/me", h.UpdateMe)
	api.POST("/face-recognition", h.FaceRecognition)
	staff.GET("/patients/search", h.Search)
	staff.GET("/patients/all", h.ListAll)
}

// Search returns each matching patient with their full record history so the
// staff view can render results without a second round trip.
func (h *Handler) Search(c echo.Context) error {
	ctx := c.Request().Context()
	patients, err := h.svc.Search(ctx, c.QueryParam("q"), c.QueryParam("type"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to search patients")
	}

	results := make([]PatientWithRecords, 0, len(patients))
	for _, p := range patients {
		history, err := h.records.PatientHistory(ctx, p.ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load patient records")
		}
		if history == nil {
			history = []*record.RecordWithRefs{}
		}
		results = append(results, PatientWithRecords{Patient: *p, Records: history})
	}
	return c.JSON(http.StatusOK, results)
}

func (h *Handler) GetMe(c echo.Context) error {
	p, err := h.patientFromUserParam(c)
	if err != nil {
		return err
	}
	return h.respondWithRecords(c, p)
}

func (h *Handler) UpdateMe(c echo.Context) error {
	p, err := h.patientFromUserParam(c)
	if err != nil {
		return err
	}

	var upd PatientUpdate
	if err := c.Bind(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	updated, err := h.svc.UpdatePatient(c.Request().Context(), p.ID, &upd)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if updated == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Patient not found")
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) ListAll(c echo.Context) error {
	params := pagination.FromContext(c)
	patients, total, err := h.svc.ListPatients(c.Request().Context(), params.Limit, params.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list patients")
	}
	if patients == nil {
		patients = []*Patient{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(patients, total, params.Limit, params.Offset))
}

func (h *Handler) FaceRecognition(c echo.Context) error {
	p, err := h.svc.FirstPatient(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Recognition failed")
	}
	if p == nil {
		return echo.NewHTTPError(http.StatusNotFound, "No patients found")
	}
	return h.respondWithRecords(c, p)
}

func (h *Handler) respondWithRecords(c echo.Context, p *Patient) error {
	history, err := h.records.PatientHistory(c.Request().Context(), p.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load patient records")
	}
	if history == nil {
		history = []*record.RecordWithRefs{}
	}
	return c.JSON(http.StatusOK, PatientWithRecords{Patient: *p, Records: history})
}

func (h *Handler) patientFromUserParam(c echo.Context) (*Patient, error) {
	raw := c.QueryParam("userId")
	if raw == "" {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "userId is required")
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid userId")
	}

	p, err := h.svc.GetPatientByUserID(c.Request().Context(), userID)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "Failed to load patient")
	}
	if p == nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, "Patient not found")
	}
	return p, nil
}
