package uimsg_test

import (
	"testing"

	"tasktree/pkg/translator"
	"tasktree/pkg/uimsg"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMain(m *testing.M) {
	// Initialize minimal translator for tests
	translator.Translator = i18n.NewBundle(language.English)
	err := translator.Translator.AddMessages(language.English,
		&i18n.Message{ID: "test_key", Other: "Test message"},
		&i18n.Message{ID: "test_template", Other: "Category '{{.Name}}' added."},
	)
	if err != nil {
		return
	}
	err = translator.Translator.AddMessages(language.Spanish,
		&i18n.Message{ID: "test_key", Other: "Mensaje de prueba"},
	)
	if err != nil {
		return
	}
	m.Run()
}

func TestLocalize_ReturnsTranslation(t *testing.T) {
	msg := uimsg.Localize("test_key", "en", nil)
	assert.Equal(t, "Test message", msg)
}

func TestLocalize_SelectsLanguage(t *testing.T) {
	msg := uimsg.Localize("test_key", "es", nil)
	assert.Equal(t, "Mensaje de prueba", msg)
}

func TestLocalize_InterpolatesTemplateData(t *testing.T) {
	msg := uimsg.Localize("test_template", "en", map[string]any{"Name": "Work"})
	assert.Equal(t, "Category 'Work' added.", msg)
}

func TestLocalize_FallbackToKey(t *testing.T) {
	// No translation exists for "unknown_key"
	msg := uimsg.Localize("unknown_key", "en", nil)
	assert.Equal(t, "unknown_key", msg)
}

func TestLocalize_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	msg := uimsg.Localize("test_template", "de", map[string]any{"Name": "Work"})
	assert.Equal(t, "Category 'Work' added.", msg)
}
