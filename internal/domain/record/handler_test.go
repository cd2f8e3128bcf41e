package record

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/arogya/arogya/internal/domain/hospital"
)

type mockHospitalRepo struct {
	hospitals map[uuid.UUID]*hospital.Hospital
}

func (m *mockHospitalRepo) Create(_ context.Context, h *hospital.Hospital) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	m.hospitals[h.ID] = h
	return nil
}

func (m *mockHospitalRepo) GetByID(_ context.Context, id uuid.UUID) (*hospital.Hospital, error) {
	return m.hospitals[id], nil
}

func (m *mockHospitalRepo) GetByCode(_ context.Context, code string) (*hospital.Hospital, error) {
	for _, h := range m.hospitals {
		if h.Code == code {
			return h, nil
		}
	}
	return nil, nil
}

func (m *mockHospitalRepo) List(_ context.Context) ([]*hospital.Hospital, error) {
	var items []*hospital.Hospital
	for _, h := range m.hospitals {
		items = append(items, h)
	}
	return items, nil
}

func newTestHandler() (*Handler, *mockRepo) {
	repo := newMockRepo()
	hospRepo := &mockHospitalRepo{hospitals: make(map[uuid.UUID]*hospital.Hospital)}
	return NewHandler(NewService(repo), hospital.NewService(hospRepo)), repo
}

func TestCreateRecordHandler(t *testing.T) {
	h, _ := newTestHandler()

	body := `{"patient_id":"` + uuid.NewString() + `","disease":"Dengue","risk_level":"high"}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/health-records", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateRecord(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got HealthRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !got.IsEditable || got.EditableUntil == nil {
		t.Error("expected created record to carry the edit window")
	}
}

func TestRecentByHospitalHandler_MissingParam(t *testing.T) {
	h, _ := newTestHandler()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/health-records/recent", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.RecentByHospital(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 error, got %v", err)
	}
}

func TestUpdateRecordHandler_NotFound(t *testing.T) {
	h, _ := newTestHandler()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/api/health-records/"+uuid.NewString(), strings.NewReader(`{"disease":"Flu"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	err := h.UpdateRecord(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 error, got %v", err)
	}
}

func TestPatientHistoryHandler_Empty(t *testing.T) {
	h, _ := newTestHandler()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/health-records/patient/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("patientId")
	c.SetParamValues(uuid.NewString())

	if err := h.PatientHistory(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("expected empty array, got %s", rec.Body.String())
	}
}
