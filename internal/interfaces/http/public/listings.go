package public

import (
	"context"
	"net/http"
	"time"

	"github.com/mashatel/directory-services/api/internal/interfaces/http/common"
	publicdomain "github.com/mashatel/directory-services/api/internal/public/domain"
)

const (
	listingCategoryKind = publicdomain.ListingCategory
	listingSponsorKind  = publicdomain.ListingSponsor
	listingBannerKind   = publicdomain.ListingBanner
	listingPremiumKind  = publicdomain.ListingPremium
)

func (h *Handler) listingHandler(kind publicdomain.ListingKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		listings, err := h.listingQueries.List(ctx, kind)
		if err != nil {
			h.logger.Error("listing fetch failed", "kind", string(kind), "error", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "فشل في جلب البيانات")
			return
		}

		items := make([]listingResponse, 0, len(listings))
		for _, listing := range listings {
			items = append(items, buildListingResponse(listing))
		}

		common.WriteJSON(h.logger, w, http.StatusOK, listingListResponse{Items: items})
	}
}
