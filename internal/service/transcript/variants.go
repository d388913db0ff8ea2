package transcript

import "strings"

// variantLists holds the ordered language-region codes considered equivalent
// for a target language, highest priority first
var variantLists = map[string][]string{
	"es": {"es", "es-ES", "es-419", "es-MX", "es-AR", "es-US"},
	"en": {"en", "en-US", "en-GB", "en-CA", "en-IN"},
}

// SupportedLanguages returns the target languages the engine accepts
func SupportedLanguages() []string {
	return []string{"es", "en"}
}

// IsSupportedLanguage reports whether lang is an accepted target language
func IsSupportedLanguage(lang string) bool {
	_, ok := variantLists[lang]
	return ok
}

// Variants returns the ordered variant list for a target language
func Variants(lang string) []string {
	return variantLists[lang]
}

// otherLanguage returns the other supported language family
func otherLanguage(lang string) string {
	if lang == "es" {
		return "en"
	}
	return "es"
}

// languageFamily strips the region subtag ("es-MX" -> "es")
func languageFamily(code string) string {
	if idx := strings.IndexByte(code, '-'); idx >= 0 {
		return code[:idx]
	}
	return code
}
