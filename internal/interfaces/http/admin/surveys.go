package admin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	adminapp "github.com/mashatel/directory-services/api/internal/admin/application"
	"github.com/mashatel/directory-services/api/internal/interfaces/http/common"
	publicdomain "github.com/mashatel/directory-services/api/internal/public/domain"
)

func (h *Handler) surveyListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		queryValues := r.URL.Query()
		filter := adminapp.SurveyFilter{
			Keyword: strings.TrimSpace(queryValues.Get("keyword")),
			Status:  strings.TrimSpace(queryValues.Get("status")),
			From:    parseDateParam(queryValues.Get("from")),
			To:      parseDateParam(queryValues.Get("to")),
		}
		page, _ := common.ParsePositiveInt(queryValues.Get("page"), 1)
		limit, _ := common.ParsePositiveInt(queryValues.Get("limit"), 20)
		paging := adminapp.Paging{Page: page, Limit: limit}

		surveys, err := h.surveyService.List(ctx, filter, paging)
		if err != nil {
			h.logger.Error("admin survey search failed", "error", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "فشل في جلب الاستبيانات")
			return
		}

		items := make([]adminSurveyResponse, 0, len(surveys))
		for _, survey := range surveys {
			items = append(items, adminSurveyDomainToResponse(survey))
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}

func (h *Handler) surveyDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		objectID, err := primitive.ObjectIDFromHex(idParam)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "صيغة معرف الاستبيان غير صحيحة")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		survey, err := h.surveyService.Detail(ctx, objectID.Hex())
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteError(h.logger, w, http.StatusNotFound, "الاستبيان غير موجود")
				return
			}
			h.logger.Error("admin survey detail fetch failed", "id", idParam, "error", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "فشل في جلب الاستبيان")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, adminSurveyDomainToResponse(*survey))
	}
}

func (h *Handler) surveyStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		objectID, err := primitive.ObjectIDFromHex(idParam)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "صيغة معرف الاستبيان غير صحيحة")
			return
		}

		var req adminSurveyStatusRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "صيغة الطلب غير صحيحة")
			return
		}
		status := publicdomain.NormalizeSurveyStatus(req.Status)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		survey, err := h.surveyService.SetStatus(ctx, objectID.Hex(), status)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteError(h.logger, w, http.StatusNotFound, "الاستبيان غير موجود")
				return
			}
			h.logger.Error("admin survey status update failed", "id", idParam, "error", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "فشل في تحديث حالة الاستبيان")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, adminSurveyDomainToResponse(*survey))
	}
}

func (h *Handler) surveyDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		objectID, err := primitive.ObjectIDFromHex(idParam)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "صيغة معرف الاستبيان غير صحيحة")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.surveyService.Delete(ctx, objectID.Hex()); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteError(h.logger, w, http.StatusNotFound, "الاستبيان غير موجود")
				return
			}
			h.logger.Error("admin survey delete failed", "id", idParam, "error", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "فشل في حذف الاستبيان")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) contactListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		queryValues := r.URL.Query()
		page, _ := common.ParsePositiveInt(queryValues.Get("page"), 1)
		limit, _ := common.ParsePositiveInt(queryValues.Get("limit"), 20)

		messages, err := h.contactService.List(ctx, adminapp.Paging{Page: page, Limit: limit})
		if err != nil {
			h.logger.Error("admin contact list failed", "error", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "فشل في جلب الرسائل")
			return
		}

		items := make([]adminContactResponse, 0, len(messages))
		for _, message := range messages {
			items = append(items, adminContactDomainToResponse(message))
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}
