package onesignal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/spf13/viper"
)

const defaultEndpoint = "https://onesignal.com/api/v1/notifications"

// ErrNoRecipients is returned when onesignal accepts a request but finds no
// subscribed device for it
var ErrNoRecipients = errors.New("no subscribed recipients")

type NotificationRequest struct {
	AppID          string                 `json:"app_id"`
	TemplateID     string                 `json:"template_id,omitempty"`
	Headings       map[string]string      `json:"headings,omitempty"`
	Contents       map[string]string      `json:"contents,omitempty"`
	Filters        []map[string]string    `json:"filters,omitempty"`
	Data           map[string]interface{} `json:"data,omitempty"`
	LocalChannelID string                 `json:"android_channel_id,omitempty"`
}

type notificationResponse struct {
	ID         string          `json:"id"`
	Recipients int             `json:"recipients"`
	Errors     json.RawMessage `json:"errors"`
}

type OneSignalClient struct {
	httpClient *http.Client
	apiKey     string
	endpoint   string
}

type Option func(*OneSignalClient)

func WithEndpoint(endpoint string) Option {
	return func(c *OneSignalClient) {
		c.endpoint = endpoint
	}
}

func WithAPIKey(key string) Option {
	return func(c *OneSignalClient) {
		c.apiKey = key
	}
}

func NewClient(httpClient *http.Client, opts ...Option) *OneSignalClient {
	c := &OneSignalClient{
		httpClient: httpClient,
		apiKey:     viper.GetString("onesignal.apikey"),
		endpoint:   defaultEndpoint,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SendNotification submits a notification request to onesignal
func (c *OneSignalClient) SendNotification(ctx context.Context, r *NotificationRequest) error {
	body, err := json.Marshal(r)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Basic "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("onesignal responds %d: %s", resp.StatusCode, string(respBody))
	}

	var result notificationResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return err
	}
	if result.Recipients == 0 {
		return ErrNoRecipients
	}
	return nil
}
