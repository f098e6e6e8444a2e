// Package i18n resolves fixed string identifiers (e.g.
// "dialog.common.ok_button.label") to display text for the configured UI
// language. Unknown keys resolve to themselves so a missing translation is
// visible instead of fatal.
package i18n

import (
	"embed"
	"sync"

	"imgvault/internal/log"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	mu        sync.RWMutex
	localizer *i18n.Localizer
)

// Init loads the embedded message files and selects the display language.
// Falls back to English for messages missing from the chosen language.
func Init(lang string) error {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return err
	}
	for _, entry := range entries {
		data, err := localeFS.ReadFile("locales/" + entry.Name())
		if err != nil {
			return err
		}
		if _, err := bundle.ParseMessageFileBytes(data, entry.Name()); err != nil {
			return err
		}
	}

	mu.Lock()
	localizer = i18n.NewLocalizer(bundle, lang, "en")
	mu.Unlock()
	return nil
}

// T returns the display text for the given message key. When the key is
// unknown the key itself is returned.
func T(key string) string {
	mu.RLock()
	loc := localizer
	mu.RUnlock()

	if loc == nil {
		if err := Init("en"); err != nil {
			log.Warnf("i18n: could not load messages: %v", err)
			return key
		}
		mu.RLock()
		loc = localizer
		mu.RUnlock()
	}

	msg, err := loc.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		return key
	}
	return msg
}
