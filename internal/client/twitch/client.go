// Package twitch wraps the external platform's token, subscription and
// stream-status APIs. Inbound EventSub notifications are handled by the REST
// layer; this client covers the outbound half of the contract.
package twitch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/twitchcollab/collab-service/internal/config"
	"github.com/twitchcollab/collab-service/internal/model"
)

// App tokens are reused until shortly before expiry.
const tokenRefreshBuffer = 5 * time.Minute

type Client struct {
	clientID      string
	clientSecret  string
	webhookSecret string
	callbackURL   string
	apiBaseURL    string
	authBaseURL   string
	httpClient    *http.Client

	tokenMu        sync.Mutex
	appToken       string
	tokenExpiresAt time.Time

	subMu      sync.Mutex
	subscribed map[string]struct{}
}

func New(cfg *config.Config) *Client {
	return &Client{
		clientID:      cfg.Twitch.ClientID,
		clientSecret:  cfg.Twitch.ClientSecret,
		webhookSecret: cfg.Twitch.WebhookSecret,
		callbackURL:   cfg.Twitch.CallbackURL,
		apiBaseURL:    cfg.Twitch.APIBaseURL,
		authBaseURL:   cfg.Twitch.AuthBaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Twitch.Timeout,
		},
		subscribed: make(map[string]struct{}),
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) getAppAccessToken(ctx context.Context) (string, error) {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()

	if c.appToken != "" && time.Now().Before(c.tokenExpiresAt.Add(-tokenRefreshBuffer)) {
		return c.appToken, nil
	}

	form := url.Values{
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
		"grant_type":    {"client_credentials"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authBaseURL+"/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute token request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected token status code: %d", resp.StatusCode)
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}

	c.appToken = tokenResp.AccessToken
	c.tokenExpiresAt = time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)

	return c.appToken, nil
}

// EnsureSubscribed registers stream.online and stream.offline EventSub
// subscriptions for the user. Idempotent: already-tracked users are a no-op.
// On failure the user is not marked as subscribed, so the next status check
// retries the registration.
func (c *Client) EnsureSubscribed(ctx context.Context, userID string) error {
	c.subMu.Lock()
	if _, ok := c.subscribed[userID]; ok {
		c.subMu.Unlock()
		return nil
	}
	c.subMu.Unlock()

	token, err := c.getAppAccessToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to get app access token: %w", err)
	}

	for _, eventType := range []string{model.StreamOnlineEventType, model.StreamOfflineEventType} {
		if err := c.createSubscription(ctx, token, eventType, userID); err != nil {
			return fmt.Errorf("failed to subscribe to %s for %s: %w", eventType, userID, err)
		}
	}

	c.subMu.Lock()
	c.subscribed[userID] = struct{}{}
	c.subMu.Unlock()

	return nil
}

func (c *Client) createSubscription(ctx context.Context, token, eventType, userID string) error {
	payload := map[string]interface{}{
		"type":    eventType,
		"version": "1",
		"condition": map[string]string{
			"broadcaster_user_id": userID,
		},
		"transport": map[string]string{
			"method":   "webhook",
			"callback": c.callbackURL,
			"secret":   c.webhookSecret,
		},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBaseURL+"/eventsub/subscriptions", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Client-Id", c.clientID)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	// 409 means the subscription already exists on the platform side.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted && resp.StatusCode != http.StatusConflict {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return nil
}

// CheckLiveStatus queries the platform's current stream state directly,
// bypassing the event feed. Used for drift correction.
func (c *Client) CheckLiveStatus(ctx context.Context, userID string) (bool, error) {
	token, err := c.getAppAccessToken(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get app access token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+"/streams?user_id="+url.QueryEscape(userID), nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Client-Id", c.clientID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var streamResp struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&streamResp); err != nil {
		return false, fmt.Errorf("failed to decode response: %w", err)
	}

	return len(streamResp.Data) > 0, nil
}

// ValidateUserToken resolves a user access token to the platform user id.
func (c *Client) ValidateUserToken(ctx context.Context, token string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.authBaseURL+"/validate", nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "OAuth "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token rejected with status code: %d", resp.StatusCode)
	}

	var validateResp struct {
		UserID string `json:"user_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&validateResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if validateResp.UserID == "" {
		return "", fmt.Errorf("validate response carries no user id")
	}

	return validateResp.UserID, nil
}

// GetChannelInfo fetches the current game/topic and stream title shown on the
// browse grid.
func (c *Client) GetChannelInfo(ctx context.Context, userID string) (*model.StreamInfo, error) {
	token, err := c.getAppAccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get app access token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+"/channels?broadcaster_id="+url.QueryEscape(userID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Client-Id", c.clientID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var channelResp struct {
		Data []struct {
			GameName string `json:"game_name"`
			Title    string `json:"title"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&channelResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(channelResp.Data) == 0 {
		return &model.StreamInfo{}, nil
	}

	info := &model.StreamInfo{}
	if channelResp.Data[0].GameName != "" {
		category := channelResp.Data[0].GameName
		info.Category = &category
	}
	if channelResp.Data[0].Title != "" {
		title := channelResp.Data[0].Title
		info.Title = &title
	}

	return info, nil
}
