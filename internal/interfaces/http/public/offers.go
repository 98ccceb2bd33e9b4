package public

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mashatel/directory-services/api/internal/interfaces/http/common"
	publicapp "github.com/mashatel/directory-services/api/internal/public/application"
)

func (h *Handler) offerListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		values := r.URL.Query()
		query := publicapp.OfferQuery{
			CatalogQuery: parseCatalogQuery(values),
			NurseryID:    strings.TrimSpace(values.Get("nursery")),
			Tag:          strings.TrimSpace(values.Get("tag")),
			ActiveOnly:   parseBoolFlag(values.Get("active")),
		}

		page, err := h.offerQueries.List(ctx, query)
		if err != nil {
			h.logger.Error("offer list fetch failed", "error", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "فشل في جلب قائمة العروض")
			return
		}

		now := h.now()
		items := make([]offerResponse, 0, len(page.Items))
		for _, offer := range page.Items {
			items = append(items, buildOfferResponse(offer, now))
		}

		common.WriteJSON(h.logger, w, http.StatusOK, offerListResponse{
			Items:            items,
			pageMetaResponse: buildPageMeta(page.Page, query.Limit, page.Total, page.TotalPages, page.Pages),
		})
	}
}

func (h *Handler) offerDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "معرف العرض غير محدد")
			return
		}
		if _, err := primitive.ObjectIDFromHex(idParam); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "صيغة معرف العرض غير صحيحة")
			return
		}

		offer, err := h.offerQueries.Detail(ctx, idParam)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteError(h.logger, w, http.StatusNotFound, "العرض غير موجود")
				return
			}
			h.logger.Error("offer detail fetch failed", "id", idParam, "error", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "فشل في جلب بيانات العرض")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildOfferResponse(*offer, h.now()))
	}
}
