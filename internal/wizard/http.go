package wizard

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/casaflow/casaflow/internal/httpx"
)

// RegisterRoutes exposes wizard HTTP endpoints.
func RegisterRoutes(router chi.Router, service *Service) {
	router.Route("/wizard", func(r chi.Router) {
		r.Get("/steps/{type}", stepTableHandler(service))
		r.Route("/drafts", func(r chi.Router) {
			r.Get("/", listDraftsHandler(service))
			r.Post("/", saveDraftHandler(service))
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", getDraftHandler(service))
				r.Post("/", saveDraftHandler(service))
				r.Delete("/", discardDraftHandler(service))
				r.Post("/publish", publishHandler(service))
			})
		})
	})
}

type saveDraftRequest struct {
	DraftID        string         `json:"draftId"`
	UserID         string         `json:"userId"`
	WizardType     string         `json:"wizardType"`
	WizardConfigID string         `json:"wizardConfigId"`
	FormData       map[string]any `json:"formData"`
	CurrentStep    string         `json:"currentStep"`
	Title          *string        `json:"title"`
	Description    *string        `json:"description"`
}

type publishRequest struct {
	UserID        string         `json:"userId"`
	FinalFormData map[string]any `json:"finalFormData"`
}

func saveDraftHandler(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload saveDraftRequest
		if err := decodeJSON(r, &payload); err != nil {
			httpx.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		if strings.TrimSpace(payload.UserID) == "" {
			httpx.Error(w, http.StatusBadRequest, "userId is required")
			return
		}
		if strings.TrimSpace(payload.CurrentStep) == "" {
			httpx.Error(w, http.StatusBadRequest, "currentStep is required")
			return
		}

		input := SaveDraftInput{
			DraftID:        payload.DraftID,
			UserID:         payload.UserID,
			WizardType:     payload.WizardType,
			WizardConfigID: payload.WizardConfigID,
			FormData:       payload.FormData,
			CurrentStep:    payload.CurrentStep,
			Title:          payload.Title,
			Description:    payload.Description,
		}
		if id := chi.URLParam(r, "id"); id != "" {
			input.DraftID = id
		}

		status := http.StatusOK
		if input.DraftID == "" {
			status = http.StatusCreated
		}

		summary, err := service.SaveDraft(r.Context(), input)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		httpx.JSON(w, status, map[string]any{"data": summary})
	}
}

func getDraftHandler(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		userID := strings.TrimSpace(r.URL.Query().Get("userId"))
		if userID == "" {
			httpx.Error(w, http.StatusBadRequest, "userId query parameter is required")
			return
		}

		record, err := service.GetDraft(r.Context(), id, userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		httpx.JSON(w, http.StatusOK, map[string]any{"data": record.ToDTO()})
	}
}

func listDraftsHandler(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.URL.Query().Get("userId"))
		if userID == "" {
			httpx.Error(w, http.StatusBadRequest, "userId query parameter is required")
			return
		}

		records, err := service.ListDrafts(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		items := make([]map[string]any, 0, len(records))
		for _, record := range records {
			items = append(items, record.ToDTO())
		}

		httpx.JSON(w, http.StatusOK, map[string]any{"data": items})
	}
}

func discardDraftHandler(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		userID := strings.TrimSpace(r.URL.Query().Get("userId"))
		if userID == "" {
			httpx.Error(w, http.StatusBadRequest, "userId query parameter is required")
			return
		}

		if err := service.DiscardDraft(r.Context(), id, userID); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func publishHandler(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var payload publishRequest
		if err := decodeJSON(r, &payload); err != nil {
			httpx.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		if strings.TrimSpace(payload.UserID) == "" {
			httpx.Error(w, http.StatusBadRequest, "userId is required")
			return
		}

		summary, err := service.Publish(r.Context(), PublishInput{
			DraftID:       id,
			UserID:        payload.UserID,
			FinalFormData: payload.FinalFormData,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		httpx.JSON(w, http.StatusOK, map[string]any{"data": summary})
	}
}

func stepTableHandler(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wizardType, err := ParseType(chi.URLParam(r, "type"))
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		configID := strings.TrimSpace(r.URL.Query().Get("configId"))
		steps, err := service.StepTable(wizardType, configID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		items := make([]map[string]any, 0, len(steps))
		for _, step := range steps {
			fields := make([]map[string]any, 0, len(step.Fields))
			for _, field := range step.Fields {
				fields = append(fields, map[string]any{
					"key":      field.Key,
					"required": field.Required,
					"kind":     string(field.Kind),
				})
			}
			items = append(items, map[string]any{
				"id":       step.ID,
				"title":    step.Title,
				"required": step.Required,
				"fields":   fields,
			})
		}

		httpx.JSON(w, http.StatusOK, map[string]any{"data": items})
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case IsNotFound(err):
		httpx.Error(w, http.StatusNotFound, err.Error())
	case IsUnauthorized(err):
		httpx.Error(w, http.StatusForbidden, err.Error())
	case IsValidation(err):
		httpx.Error(w, http.StatusBadRequest, err.Error())
	default:
		if violation, ok := AsRuleViolation(err); ok {
			httpx.JSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":   violation.Code,
				"reasons": violation.Reasons,
			})
			return
		}
		httpx.Error(w, http.StatusInternalServerError, err.Error())
	}
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return err
	}
	return nil
}
