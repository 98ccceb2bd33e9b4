package admin

import (
	"errors"
	"strings"
	"time"

	adminapp "github.com/mashatel/directory-services/api/internal/admin/application"
	admindomain "github.com/mashatel/directory-services/api/internal/admin/domain"
)

func buildNurseryCommand(req adminNurseryRequest) (adminapp.UpsertNurseryCommand, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return adminapp.UpsertNurseryCommand{}, errors.New("الاسم مطلوب")
	}

	region, err := admindomain.NewRegion(req.Region)
	if err != nil {
		return adminapp.UpsertNurseryCommand{}, errors.New("المنطقة مطلوبة")
	}
	categories, err := admindomain.NewCategoryList(req.Categories)
	if err != nil {
		return adminapp.UpsertNurseryCommand{}, errors.New("يجب تحديد تصنيف واحد على الأقل")
	}
	services, err := admindomain.NewServiceTypeList(req.Services)
	if err != nil {
		return adminapp.UpsertNurseryCommand{}, err
	}
	image, err := admindomain.NewURL(req.Image)
	if err != nil {
		return adminapp.UpsertNurseryCommand{}, errors.New("رابط الصورة غير صحيح")
	}

	return adminapp.UpsertNurseryCommand{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Categories:  categories,
		Region:      region,
		City:        strings.TrimSpace(req.City),
		District:    strings.TrimSpace(req.District),
		Services:    services,
		Phone:       strings.TrimSpace(req.Phone),
		WhatsApp:    strings.TrimSpace(req.WhatsApp),
		Image:       image,
		Featured:    req.Featured,
		Published:   publishedOrDefault(req.Published),
	}, nil
}

func buildOfferCommand(req adminOfferRequest) (adminapp.UpsertOfferCommand, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return adminapp.UpsertOfferCommand{}, errors.New("عنوان العرض مطلوب")
	}
	nurseryID := strings.TrimSpace(req.NurseryID)
	if nurseryID == "" {
		return adminapp.UpsertOfferCommand{}, errors.New("معرف المشتل مطلوب")
	}

	var discount *admindomain.Discount
	if req.Discount != nil {
		value, err := admindomain.NewDiscount(*req.Discount)
		if err != nil {
			return adminapp.UpsertOfferCommand{}, errors.New("نسبة الخصم يجب أن تكون بين 0 و 100")
		}
		discount = &value
	}

	return adminapp.UpsertOfferCommand{
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		NurseryID:   nurseryID,
		Discount:    discount,
		EndDate:     strings.TrimSpace(req.EndDate),
		Tags:        trimStrings(req.Tags),
		Highlighted: req.Highlighted,
		Published:   publishedOrDefault(req.Published),
	}, nil
}

func buildListingCommand(kind admindomain.ListingKind, req adminListingRequest) (adminapp.UpsertListingCommand, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return adminapp.UpsertListingCommand{}, errors.New("العنوان مطلوب")
	}

	image, err := admindomain.NewURL(req.Image)
	if err != nil {
		return adminapp.UpsertListingCommand{}, errors.New("رابط الصورة غير صحيح")
	}
	link, err := admindomain.NewURL(req.Link)
	if err != nil {
		return adminapp.UpsertListingCommand{}, errors.New("الرابط غير صحيح")
	}
	order, err := admindomain.NewDisplayOrder(req.Order)
	if err != nil {
		return adminapp.UpsertListingCommand{}, errors.New("ترتيب العرض يجب أن يكون صفراً أو أكثر")
	}

	return adminapp.UpsertListingCommand{
		Kind:      kind,
		Title:     title,
		Slug:      strings.TrimSpace(req.Slug),
		Image:     image,
		Link:      link,
		NurseryID: strings.TrimSpace(req.NurseryID),
		Order:     order,
		Published: publishedOrDefault(req.Published),
	}, nil
}

func publishedOrDefault(value *bool) bool {
	if value == nil {
		return true
	}
	return *value
}

func trimStrings(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		result = append(result, v)
	}
	return result
}

// parseDateParam accepts YYYY-MM-DD and returns the UTC midnight of that day.
func parseDateParam(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}
