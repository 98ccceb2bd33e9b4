package domain

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

var allowedServices = []string{"delivery", "consultation", "maintenance", "installation"}

type Region string

func NewRegion(value string) (Region, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("region is required")
	}
	return Region(trimmed), nil
}

func (r Region) String() string {
	return string(r)
}

type ServiceType string

func NewServiceType(value string) (ServiceType, error) {
	code := canonicalServiceCode(value)
	if code == "" {
		return "", fmt.Errorf("service type is required")
	}
	for _, allowed := range allowedServices {
		if allowed == code {
			return ServiceType(code), nil
		}
	}
	return "", fmt.Errorf("invalid service type: %s", value)
}

type ServiceTypeList []ServiceType

func NewServiceTypeList(values []string) (ServiceTypeList, error) {
	if len(values) == 0 {
		return nil, nil
	}
	result := make([]ServiceType, 0, len(values))
	seen := make(map[ServiceType]struct{})
	for _, raw := range values {
		value, err := NewServiceType(raw)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}
	return ServiceTypeList(result), nil
}

func (l ServiceTypeList) Strings() []string {
	result := make([]string, 0, len(l))
	for _, v := range l {
		result = append(result, string(v))
	}
	return result
}

type Category string

func NewCategory(value string) (Category, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("category is required")
	}
	return Category(trimmed), nil
}

type CategoryList []Category

func NewCategoryList(values []string) (CategoryList, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("categories must not be empty")
	}
	result := make([]Category, 0, len(values))
	seen := make(map[Category]struct{})
	for _, raw := range values {
		value, err := NewCategory(raw)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}
	return CategoryList(result), nil
}

func (l CategoryList) Strings() []string {
	result := make([]string, 0, len(l))
	for _, v := range l {
		result = append(result, string(v))
	}
	return result
}

// Discount is a percentage in [0, 100]. Zero means "no discount".
type Discount float64

func NewDiscount(value float64) (Discount, error) {
	if value < 0 || value > 100 {
		return 0, fmt.Errorf("discount must be between 0 and 100")
	}
	return Discount(value), nil
}

func (d Discount) Float64() float64 {
	return float64(d)
}

type DisplayOrder int

func NewDisplayOrder(value int) (DisplayOrder, error) {
	if value < 0 {
		return 0, fmt.Errorf("order must be >= 0")
	}
	return DisplayOrder(value), nil
}

func (o DisplayOrder) Int() int {
	return int(o)
}

type Email string

func NewEmail(value string) (Email, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	if len(trimmed) > 254 {
		return "", fmt.Errorf("email too long")
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return "", fmt.Errorf("invalid email: %w", err)
	}
	return Email(trimmed), nil
}

func (e Email) String() string {
	return string(e)
}

type URL string

func NewURL(value string) (URL, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	if _, err := url.ParseRequestURI(trimmed); err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	return URL(trimmed), nil
}

func (u URL) String() string {
	return string(u)
}

// canonicalServiceCode maps Arabic labels and loose spellings onto the
// canonical service codes stored in the database.
func canonicalServiceCode(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}

	switch trimmed {
	case "توصيل":
		return "delivery"
	case "استشارات", "استشارة":
		return "consultation"
	case "صيانة":
		return "maintenance"
	case "تركيب", "تنسيق":
		return "installation"
	}

	lower := strings.ToLower(trimmed)
	switch lower {
	case "delivery", "consultation", "maintenance", "installation":
		return lower
	}

	return lower
}
