package i18n

import "sync"

// Supported locales. Vietnamese is the storefront default; English is the
// fallback for keys a locale does not carry.
const (
	LangVI = "vi"
	LangEN = "en"
)

// Translator resolves message keys for one session's chosen locale.
type Translator struct {
	mu   sync.Mutex
	lang string
}

func New(lang string) *Translator {
	if _, ok := messages[lang]; !ok {
		lang = LangEN
	}
	return &Translator{lang: lang}
}

func (t *Translator) Lang() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lang
}

// SetLang switches the session locale; unknown locales are ignored.
func (t *Translator) SetLang(lang string) {
	if _, ok := messages[lang]; !ok {
		return
	}
	t.mu.Lock()
	t.lang = lang
	t.mu.Unlock()
}

// T resolves key in the active locale, falling back to English and finally
// to the key itself so a missing string never blanks the UI.
func (t *Translator) T(key string) string {
	lang := t.Lang()
	if msg, ok := messages[lang][key]; ok {
		return msg
	}
	if msg, ok := messages[LangEN][key]; ok {
		return msg
	}
	return key
}
