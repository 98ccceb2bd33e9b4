package common

const (
	// MaxRequestBody limits JSON request bodies for survey/contact/admin endpoints.
	MaxRequestBody = 1 << 20
	// MaxNurseryDescriptionRunes limits nursery description length to keep payloads sane.
	MaxNurseryDescriptionRunes = 4000
	// MaxSuggestionRunes limits free-text survey answers.
	MaxSuggestionRunes = 2000
)
