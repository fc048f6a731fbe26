package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Default is the language the clinic serves when no preference is known.
const Default = "tr"

// Supported lists the language codes the client ships translations for, in
// matcher priority order. The default comes first so ambiguous input
// resolves to it.
var Supported = []string{"tr", "en"}

var matcher = language.NewMatcher(supportedTags())

func supportedTags() []language.Tag {
	tags := make([]language.Tag, len(Supported))
	for i, code := range Supported {
		tags[i] = language.MustParse(code)
	}
	return tags
}

// Normalize maps raw language input onto a supported code. Region and script
// subtags collapse to their base language (en-US becomes en, TR becomes tr);
// empty or unrecognizable input yields Default.
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Default
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return Default
	}

	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Default
	}
	return Supported[index]
}

// Recognized reports whether raw resolves to a supported language by
// matching, as opposed to Normalize's silent fallback to Default. Region
// variants of supported languages (tr-TR, en-US) are recognized; unrelated
// languages and garbage are not.
func Recognized(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return false
	}

	_, _, confidence := matcher.Match(tag)
	return confidence > language.No
}

// IsSupported reports whether code is exactly one of the supported codes.
// Unlike Normalize it does no fuzzy matching.
func IsSupported(code string) bool {
	for _, supported := range Supported {
		if code == supported {
			return true
		}
	}
	return false
}
