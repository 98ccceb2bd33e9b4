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

	admindomain "github.com/mashatel/directory-services/api/internal/admin/domain"
	"github.com/mashatel/directory-services/api/internal/interfaces/http/common"
)

func (h *Handler) listingKindFromRequest(w http.ResponseWriter, r *http.Request) (admindomain.ListingKind, bool) {
	kind, err := admindomain.NewListingKind(chi.URLParam(r, "kind"))
	if err != nil {
		common.WriteError(h.logger, w, http.StatusBadRequest, "نوع القائمة غير معروف")
		return "", false
	}
	return kind, true
}

func (h *Handler) listingListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := h.listingKindFromRequest(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		listings, err := h.listingService.List(ctx, kind)
		if err != nil {
			h.logger.Error("admin listing fetch failed", "kind", kind.String(), "error", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "فشل في جلب البيانات")
			return
		}

		items := make([]adminListingResponse, 0, len(listings))
		for _, listing := range listings {
			items = append(items, adminListingDomainToResponse(listing))
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}

func (h *Handler) listingDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := h.listingKindFromRequest(w, r)
		if !ok {
			return
		}

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		objectID, err := primitive.ObjectIDFromHex(idParam)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "صيغة المعرف غير صحيحة")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		listing, err := h.listingService.Detail(ctx, kind, objectID.Hex())
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteError(h.logger, w, http.StatusNotFound, "السجل غير موجود")
				return
			}
			h.logger.Error("admin listing detail fetch failed", "kind", kind.String(), "id", idParam, "error", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "فشل في جلب البيانات")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, adminListingDomainToResponse(*listing))
	}
}

func (h *Handler) listingCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := h.listingKindFromRequest(w, r)
		if !ok {
			return
		}

		var req adminListingRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "صيغة الطلب غير صحيحة")
			return
		}

		cmd, err := buildListingCommand(kind, req)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		listing, err := h.listingService.Create(ctx, cmd)
		if err != nil {
			h.logger.Error("admin listing create failed", "kind", kind.String(), "error", err)
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, adminListingDomainToResponse(*listing))
	}
}

func (h *Handler) listingUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := h.listingKindFromRequest(w, r)
		if !ok {
			return
		}

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		objectID, err := primitive.ObjectIDFromHex(idParam)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "صيغة المعرف غير صحيحة")
			return
		}

		var req adminListingRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "صيغة الطلب غير صحيحة")
			return
		}

		cmd, err := buildListingCommand(kind, req)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		listing, err := h.listingService.Update(ctx, objectID.Hex(), cmd)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteError(h.logger, w, http.StatusNotFound, "السجل غير موجود")
				return
			}
			h.logger.Error("admin listing update failed", "kind", kind.String(), "id", idParam, "error", err)
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, adminListingDomainToResponse(*listing))
	}
}

func (h *Handler) listingDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := h.listingKindFromRequest(w, r)
		if !ok {
			return
		}

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		objectID, err := primitive.ObjectIDFromHex(idParam)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "صيغة المعرف غير صحيحة")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.listingService.Delete(ctx, kind, objectID.Hex()); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteError(h.logger, w, http.StatusNotFound, "السجل غير موجود")
				return
			}
			h.logger.Error("admin listing delete failed", "kind", kind.String(), "id", idParam, "error", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "فشل في حذف السجل")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
