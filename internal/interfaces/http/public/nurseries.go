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
)

func (h *Handler) nurseryListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := parseCatalogQuery(r.URL.Query())

		page, err := h.nurseryQueries.List(ctx, query)
		if err != nil {
			h.logger.Error("nursery list fetch failed", "error", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "فشل في جلب قائمة المشاتل")
			return
		}

		items := make([]nurserySummaryResponse, 0, len(page.Items))
		for _, nursery := range page.Items {
			items = append(items, buildNurserySummaryResponse(nursery, page.Discounts[nursery.ID]))
		}

		common.WriteJSON(h.logger, w, http.StatusOK, nurseryListResponse{
			Items:            items,
			pageMetaResponse: buildPageMeta(page.Page, query.Limit, page.Total, page.TotalPages, page.Pages),
		})
	}
}

func (h *Handler) nurseryDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "معرف المشتل غير محدد")
			return
		}
		if _, err := primitive.ObjectIDFromHex(idParam); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "صيغة معرف المشتل غير صحيحة")
			return
		}

		nursery, activeOffer, err := h.nurseryQueries.Detail(ctx, idParam)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteError(h.logger, w, http.StatusNotFound, "المشتل غير موجود")
				return
			}
			h.logger.Error("nursery detail fetch failed", "id", idParam, "error", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "فشل في جلب بيانات المشتل")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildNurseryDetailResponse(*nursery, activeOffer, h.now()))
	}
}

func (h *Handler) now() time.Time {
	if h.location != nil {
		return time.Now().In(h.location)
	}
	return time.Now()
}
