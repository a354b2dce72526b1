package background

import (
	"context"

	"github.com/bitmark-inc/exchange-api/external/onesignal"
)

// OneSignalLanguageCode is a mapping between onesignal language code and i18n language code
var OneSignalLanguageCode = map[string]string{
	"zh-Hant": "zh_tw",
	"en":      "en",
}

type NotificationCenter interface {
	NotifyAccountByText(ctx context.Context, accountID string, headings, contents map[string]string, data map[string]interface{}) error
}

type OnesignalNotificationCenter struct {
	appID  string
	client *onesignal.OneSignalClient
}

func NewOnesignalNotificationCenter(appID string, client *onesignal.OneSignalClient) *OnesignalNotificationCenter {
	return &OnesignalNotificationCenter{
		appID:  appID,
		client: client,
	}
}

// NotifyAccountByText sends a message to the devices tagged with the account id
func (o *OnesignalNotificationCenter) NotifyAccountByText(ctx context.Context, accountID string, headings, contents map[string]string, data map[string]interface{}) error {
	filters := []map[string]string{
		{
			"field":    "tag",
			"key":      "account_id",
			"relation": "=",
			"value":    accountID,
		},
	}

	req := &onesignal.NotificationRequest{
		AppID:          o.appID,
		Headings:       headings,
		Contents:       contents,
		Filters:        filters,
		Data:           data,
		LocalChannelID: "important_alert",
	}
	return o.client.SendNotification(ctx, req)
}

// localizedText keys a text with every onesignal language matching the
// account language. English is always present since onesignal requires it.
func localizedText(lang, text string) map[string]string {
	m := map[string]string{"en": text}
	for code, i18nCode := range OneSignalLanguageCode {
		if i18nCode == lang {
			m[code] = text
		}
	}
	return m
}
