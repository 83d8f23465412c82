// Package uimsg resolves user-facing console messages against the
// translation bundle.
package uimsg

import (
	"tasktree/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
)

// Localize retrieves the translated message for msgKey, interpolating data
// into the message template. Falls back to English, then to the raw key when
// no translation exists.
func Localize(msgKey, lang string, data map[string]any) string {
	l := i18n.NewLocalizer(translator.Translator, lang, translator.LanguageEn)
	cfg := i18n.LocalizeConfig{MessageID: msgKey}
	if data != nil {
		cfg.TemplateData = data
	}
	msg, err := l.Localize(&cfg)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
