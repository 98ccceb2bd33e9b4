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

func (h *Handler) offerSearchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		queryValues := r.URL.Query()
		filter := adminapp.OfferFilter{
			NurseryID: strings.TrimSpace(queryValues.Get("nursery")),
			Tag:       strings.TrimSpace(queryValues.Get("tag")),
			Keyword:   strings.TrimSpace(queryValues.Get("keyword")),
		}
		page, _ := common.ParsePositiveInt(queryValues.Get("page"), 1)
		limit, _ := common.ParsePositiveInt(queryValues.Get("limit"), 20)
		paging := adminapp.Paging{Page: page, Limit: limit}

		offers, err := h.offerService.List(ctx, filter, paging)
		if err != nil {
			h.logger.Error("admin offer search failed", "error", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "فشل في جلب قائمة العروض")
			return
		}

		items := make([]adminOfferResponse, 0, len(offers))
		for _, offer := range offers {
			items = append(items, adminOfferDomainToResponse(offer))
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}

func (h *Handler) offerDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		objectID, err := primitive.ObjectIDFromHex(idParam)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "صيغة معرف العرض غير صحيحة")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		offer, err := h.offerService.Detail(ctx, objectID.Hex())
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteError(h.logger, w, http.StatusNotFound, "العرض غير موجود")
				return
			}
			h.logger.Error("admin offer detail fetch failed", "id", idParam, "error", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "فشل في جلب بيانات العرض")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, adminOfferDomainToResponse(*offer))
	}
}

func (h *Handler) offerCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req adminOfferRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "صيغة الطلب غير صحيحة")
			return
		}

		cmd, err := buildOfferCommand(req)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		offer, err := h.offerService.Create(ctx, cmd)
		if err != nil {
			h.logger.Error("admin offer create failed", "error", err)
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, adminOfferDomainToResponse(*offer))
	}
}

func (h *Handler) offerUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		objectID, err := primitive.ObjectIDFromHex(idParam)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "صيغة معرف العرض غير صحيحة")
			return
		}

		var req adminOfferRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "صيغة الطلب غير صحيحة")
			return
		}

		cmd, err := buildOfferCommand(req)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		offer, err := h.offerService.Update(ctx, objectID.Hex(), cmd)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteError(h.logger, w, http.StatusNotFound, "العرض غير موجود")
				return
			}
			h.logger.Error("admin offer update failed", "id", idParam, "error", err)
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, adminOfferDomainToResponse(*offer))
	}
}

func (h *Handler) offerDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		objectID, err := primitive.ObjectIDFromHex(idParam)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "صيغة معرف العرض غير صحيحة")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.offerService.Delete(ctx, objectID.Hex()); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteError(h.logger, w, http.StatusNotFound, "العرض غير موجود")
				return
			}
			h.logger.Error("admin offer delete failed", "id", idParam, "error", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "فشل في حذف العرض")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
