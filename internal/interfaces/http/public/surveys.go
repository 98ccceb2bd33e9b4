package public

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mashatel/directory-services/api/internal/interfaces/http/common"
	publicapp "github.com/mashatel/directory-services/api/internal/public/application"
)

type createSurveyRequest struct {
	Name            string   `json:"name"`
	Phone           string   `json:"phone"`
	Email           string   `json:"email"`
	City            string   `json:"city"`
	VisitFrequency  string   `json:"visitFrequency"`
	PreferredPlants []string `json:"preferredPlants"`
	PurchaseChannel string   `json:"purchaseChannel"`
	Satisfaction    string   `json:"satisfaction"`
	HeardFrom       string   `json:"heardFrom"`
	Suggestions     string   `json:"suggestions"`
}

func (req *createSurveyRequest) validate() error {
	req.Name = strings.TrimSpace(req.Name)
	req.City = strings.TrimSpace(req.City)
	req.Suggestions = strings.TrimSpace(req.Suggestions)
	if req.Name == "" {
		return errors.New("الاسم مطلوب")
	}
	if utf8.RuneCountInString(req.Suggestions) > common.MaxSuggestionRunes {
		return fmt.Errorf("الاقتراحات يجب ألا تتجاوز %d حرفاً", common.MaxSuggestionRunes)
	}
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return err
	}
	req.Email = email
	return nil
}

func normalizeEmail(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	if len(trimmed) > 254 {
		return "", errors.New("البريد الإلكتروني طويل جداً")
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return "", errors.New("صيغة البريد الإلكتروني غير صحيحة")
	}
	return trimmed, nil
}

func (h *Handler) surveyCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req createSurveyRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "صيغة الطلب غير صحيحة")
			return
		}

		if err := req.validate(); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		survey, err := h.surveyCommands.Submit(ctx, publicapp.SubmitSurveyCommand{
			Name:            req.Name,
			Phone:           strings.TrimSpace(req.Phone),
			Email:           req.Email,
			City:            req.City,
			VisitFrequency:  strings.TrimSpace(req.VisitFrequency),
			PreferredPlants: req.PreferredPlants,
			PurchaseChannel: strings.TrimSpace(req.PurchaseChannel),
			Satisfaction:    strings.TrimSpace(req.Satisfaction),
			HeardFrom:       strings.TrimSpace(req.HeardFrom),
			Suggestions:     req.Suggestions,
		})
		if err != nil {
			h.logger.Error("survey submit failed", "error", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "فشل في حفظ الاستبيان")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, surveyCreatedResponse{
			ID:     survey.ID,
			Status: survey.Status,
		})
	}
}
