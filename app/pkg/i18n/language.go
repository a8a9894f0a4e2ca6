package i18n

import (
	"golang.org/x/text/language"
)

// Lang is a language the API can render labels in.
type Lang string

const (
	French Lang = "fr"
	Arabic Lang = "ar"
)

const Default = French

var (
	supported = []language.Tag{language.French, language.Arabic}
	matcher   = language.NewMatcher(supported)
)

// Negotiate picks the best supported language for an Accept-Language header value.
// Anything unparsable or unsupported falls back to French.
func Negotiate(acceptLanguage string) Lang {
	if acceptLanguage == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default
	}
	if supported[index] == language.Arabic {
		return Arabic
	}
	return French
}

// Labels holds the localized labels of one enumerated value.
type Labels struct {
	French string
	Arabic string
}

func (l Labels) In(lang Lang) string {
	if lang == Arabic {
		return l.Arabic
	}
	return l.French
}
