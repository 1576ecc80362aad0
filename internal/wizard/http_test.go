package wizard

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newTestRouter(fx *serviceFixture) *chi.Mux {
	router := chi.NewRouter()
	RegisterRoutes(router, fx.service)
	return router
}

func doJSON(t *testing.T, router http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeData(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope.Data
}

func TestHTTPSaveDraftCreates(t *testing.T) {
	fx := newServiceFixture()
	router := newTestRouter(fx)

	recorder := doJSON(t, router, http.MethodPost, "/wizard/drafts", map[string]any{
		"userId":      "user-1",
		"wizardType":  "property",
		"formData":    map[string]any{"title": "Casa Grande"},
		"currentStep": "general",
	})

	require.Equal(t, http.StatusCreated, recorder.Code)
	data := decodeData(t, recorder)
	require.NotEmpty(t, data["id"])
	require.Equal(t, "property", data["wizardType"])
	require.Equal(t, false, data["stepValid"])
}

func TestHTTPSaveDraftRequiresUserAndStep(t *testing.T) {
	fx := newServiceFixture()
	router := newTestRouter(fx)

	recorder := doJSON(t, router, http.MethodPost, "/wizard/drafts", map[string]any{
		"wizardType":  "property",
		"currentStep": "general",
	})
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = doJSON(t, router, http.MethodPost, "/wizard/drafts", map[string]any{
		"userId":     "user-1",
		"wizardType": "property",
	})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHTTPGetDraftOwnership(t *testing.T) {
	fx := newServiceFixture()
	router := newTestRouter(fx)

	saved, err := fx.service.SaveDraft(context.Background(), SaveDraftInput{
		UserID:      "user-1",
		WizardType:  "property",
		FormData:    map[string]any{"title": "Casa"},
		CurrentStep: "general",
	})
	require.NoError(t, err)

	recorder := doJSON(t, router, http.MethodGet, "/wizard/drafts/"+saved.ID+"?userId=user-1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, router, http.MethodGet, "/wizard/drafts/"+saved.ID+"?userId=intruder", nil)
	require.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = doJSON(t, router, http.MethodGet, "/wizard/drafts/missing?userId=user-1", nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHTTPPublishBlockedReturnsReasons(t *testing.T) {
	fx := newServiceFixture()
	router := newTestRouter(fx)

	saved, err := fx.service.SaveDraft(context.Background(), SaveDraftInput{
		UserID:      "user-1",
		WizardType:  "blog",
		FormData:    map[string]any{"title": "My Post"},
		CurrentStep: "content",
	})
	require.NoError(t, err)

	recorder := doJSON(t, router, http.MethodPost, "/wizard/drafts/"+saved.ID+"/publish", map[string]any{
		"userId": "user-1",
	})

	require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

	var envelope struct {
		Error   string   `json:"error"`
		Reasons []string `json:"reasons"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	require.Equal(t, CodePublishValidationFailed, envelope.Error)
	require.NotEmpty(t, envelope.Reasons)
}

func TestHTTPPublishHappyPath(t *testing.T) {
	fx := newServiceFixture()
	router := newTestRouter(fx)

	saved, err := fx.service.SaveDraft(context.Background(), SaveDraftInput{
		UserID:      "user-1",
		WizardType:  "property",
		FormData:    propertyFormData(),
		CurrentStep: "general",
	})
	require.NoError(t, err)

	recorder := doJSON(t, router, http.MethodPost, "/wizard/drafts/"+saved.ID+"/publish", map[string]any{
		"userId": "user-1",
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	data := decodeData(t, recorder)
	require.Equal(t, "prop-1", data["publishedId"])
	require.Equal(t, "property", data["wizardType"])

	recorder = doJSON(t, router, http.MethodGet, "/wizard/drafts/"+saved.ID+"?userId=user-1", nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHTTPStepTable(t *testing.T) {
	fx := newServiceFixture()
	router := newTestRouter(fx)

	recorder := doJSON(t, router, http.MethodGet, "/wizard/steps/blog", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 3)
	require.Equal(t, "content", envelope.Data[0]["id"])

	recorder = doJSON(t, router, http.MethodGet, "/wizard/steps/event", nil)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}
