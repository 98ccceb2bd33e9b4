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
)

func (h *Handler) nurserySearchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		queryValues := r.URL.Query()
		filter := adminapp.NurseryFilter{
			Region:   strings.TrimSpace(queryValues.Get("region")),
			Category: strings.TrimSpace(queryValues.Get("category")),
			Keyword:  strings.TrimSpace(queryValues.Get("keyword")),
		}
		page, _ := common.ParsePositiveInt(queryValues.Get("page"), 1)
		limit, _ := common.ParsePositiveInt(queryValues.Get("limit"), 20)
		paging := adminapp.Paging{Page: page, Limit: limit}

		nurseries, err := h.nurseryService.List(ctx, filter, paging)
		if err != nil {
			h.logger.Error("admin nursery search failed", "error", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "فشل في جلب قائمة المشاتل")
			return
		}

		items := make([]adminNurseryResponse, 0, len(nurseries))
		for _, nursery := range nurseries {
			items = append(items, adminNurseryDomainToResponse(nursery))
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}

func (h *Handler) nurseryDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		objectID, err := primitive.ObjectIDFromHex(idParam)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "صيغة معرف المشتل غير صحيحة")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		nursery, err := h.nurseryService.Detail(ctx, objectID.Hex())
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteError(h.logger, w, http.StatusNotFound, "المشتل غير موجود")
				return
			}
			h.logger.Error("admin nursery detail fetch failed", "id", idParam, "error", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "فشل في جلب بيانات المشتل")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, adminNurseryDomainToResponse(*nursery))
	}
}

func (h *Handler) nurseryCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req adminNurseryRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "صيغة الطلب غير صحيحة")
			return
		}

		cmd, err := buildNurseryCommand(req)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		nursery, err := h.nurseryService.Create(ctx, cmd)
		if err != nil {
			h.logger.Error("admin nursery create failed", "error", err)
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, adminNurseryDomainToResponse(*nursery))
	}
}

func (h *Handler) nurseryUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		objectID, err := primitive.ObjectIDFromHex(idParam)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "صيغة معرف المشتل غير صحيحة")
			return
		}

		var req adminNurseryRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "صيغة الطلب غير صحيحة")
			return
		}

		cmd, err := buildNurseryCommand(req)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		nursery, err := h.nurseryService.Update(ctx, objectID.Hex(), cmd)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteError(h.logger, w, http.StatusNotFound, "المشتل غير موجود")
				return
			}
			h.logger.Error("admin nursery update failed", "id", idParam, "error", err)
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, adminNurseryDomainToResponse(*nursery))
	}
}

func (h *Handler) nurseryDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		objectID, err := primitive.ObjectIDFromHex(idParam)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "صيغة معرف المشتل غير صحيحة")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.nurseryService.Delete(ctx, objectID.Hex()); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteError(h.logger, w, http.StatusNotFound, "المشتل غير موجود")
				return
			}
			h.logger.Error("admin nursery delete failed", "id", idParam, "error", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "فشل في حذف المشتل")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
