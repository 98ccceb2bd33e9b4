package public

import (
	"net/url"
	"strings"

	"github.com/mashatel/directory-services/api/internal/interfaces/http/common"
	publicapp "github.com/mashatel/directory-services/api/internal/public/application"
	publicdomain "github.com/mashatel/directory-services/api/internal/public/domain"
)

// parseCatalogQuery reads the shared listing parameters. Unknown sort keys
// pass through untouched and leave the stored order as-is.
func parseCatalogQuery(query url.Values) publicapp.CatalogQuery {
	page, _ := common.ParsePositiveInt(query.Get("page"), 1)
	limit, _ := common.ParsePositiveInt(query.Get("limit"), publicdomain.DefaultPageSize)

	return publicapp.CatalogQuery{
		Filter: publicdomain.Filter{
			Keyword:    strings.TrimSpace(query.Get("keyword")),
			Category:   strings.TrimSpace(query.Get("category")),
			Region:     strings.TrimSpace(query.Get("region")),
			City:       strings.TrimSpace(query.Get("city")),
			District:   strings.TrimSpace(query.Get("district")),
			OffersOnly: parseBoolFlag(query.Get("offers")),
		},
		Sort:  strings.TrimSpace(query.Get("sort")),
		Page:  page,
		Limit: limit,
	}
}

func parseBoolFlag(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
