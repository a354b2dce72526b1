package utils

import (
	"fmt"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"

	"github.com/bitmark-inc/exchange-api/schema"
)

var bundle *i18n.Bundle

func InitI18NBundle() {
	InitI18NBundleFrom(viper.GetString("i18n.dir"))
}

func InitI18NBundleFrom(dir string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.MustLoadMessageFile(path.Join(dir, "en.yaml"))
	bundle.MustLoadMessageFile(path.Join(dir, "zh_tw.yaml"))
}

func NewLocalizer(lang string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, lang)
}

// LocalizeNotification fills the title and message of a notification in the
// given language. Without a loaded bundle the type itself is used as the title.
func LocalizeNotification(lang string, n *schema.Notification) {
	if bundle == nil {
		n.Data.Title = string(n.Type)
		return
	}

	loc := NewLocalizer(lang)
	if title, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID: fmt.Sprintf("notification.%s.title", n.Type),
	}); err == nil {
		n.Data.Title = title
	} else {
		n.Data.Title = string(n.Type)
	}

	if message, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID: fmt.Sprintf("notification.%s.message", n.Type),
	}); err == nil {
		n.Data.Message = message
	}
}
