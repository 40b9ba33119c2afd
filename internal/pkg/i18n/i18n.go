package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"log"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var (
	bundle        *i18n.Bundle
	defaultLocale = "en"
	initOnce      sync.Once
)

type ctxKey struct{}

// Init loads all locale files and sets the default locale. Safe to call more
// than once; only the first call loads the bundle.
func Init(defLocale string) {
	if defLocale != "" {
		defaultLocale = defLocale
	}

	initOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

		entries, err := localeFS.ReadDir("locales")
		if err != nil {
			log.Fatalf("i18n: read locales dir: %v", err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			data, err := localeFS.ReadFile("locales/" + e.Name())
			if err != nil {
				log.Fatalf("i18n: read %s: %v", e.Name(), err)
			}
			bundle.MustParseMessageFileBytes(data, e.Name())
		}
	})
}

// WithLocale returns a new context carrying the given locale string ("ur", "en").
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, ctxKey{}, locale)
}

// LocaleFromContext extracts the locale from the context.
// Returns the configured default locale if not set.
func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKey{}).(string); ok && v != "" {
		return v
	}
	return defaultLocale
}

// IsRTL reports whether the locale renders right to left.
func IsRTL(locale string) bool {
	return locale == "ur"
}

// T translates a message ID for the given locale.
// Optional templateData provides values for template placeholders.
func T(locale, messageID string, templateData ...map[string]any) string {
	if bundle == nil {
		Init("")
	}
	l := i18n.NewLocalizer(bundle, locale, defaultLocale)

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(templateData) > 0 && templateData[0] != nil {
		cfg.TemplateData = templateData[0]
	}

	msg, err := l.Localize(cfg)
	if err != nil {
		return messageID
	}
	return msg
}

// TC translates a message ID using the locale carried by the context.
func TC(ctx context.Context, messageID string, templateData ...map[string]any) string {
	return T(LocaleFromContext(ctx), messageID, templateData...)
}
