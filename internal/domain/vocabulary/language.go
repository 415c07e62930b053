package vocabulary

// SupportedLanguages lists the source languages the trainer knows;
// vocabularies in other languages are ignored by list and learn views.
var SupportedLanguages = []string{"en", "fr", "es", "pt", "it"}

// LanguageNames maps language codes to the German display names used
// by the frontend.
var LanguageNames = map[string]string{
	"en": "Englisch",
	"fr": "Französisch",
	"es": "Spanisch",
	"pt": "Portugiesisch",
	"it": "Italienisch",
}

// LanguageSupported reports whether code is one of the supported
// source languages.
func LanguageSupported(code string) bool {
	for _, l := range SupportedLanguages {
		if l == code {
			return true
		}
	}
	return false
}
