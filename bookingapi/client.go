package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hanksha/strajk-bowling/confirmation"
	"github.com/hanksha/strajk-bowling/metrics"
	"github.com/patrickmn/go-cache"
)

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go

const apiKeyCacheKey = "api-key"

type BookingClient interface {
	Book(ctx context.Context, request Request) (confirmation.Details, error)
}

type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	cache   *cache.Cache
}

// NewClient creates a booking API client. When apiKey is empty the key is
// fetched from the API and cached.
func NewClient(baseURL, apiKey string) *Client {
	client := &http.Client{
		Timeout: 10 * time.Second,
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  client,
		cache:   cache.New(30*time.Minute, 10*time.Minute),
	}
}

func (c *Client) Book(ctx context.Context, request Request) (confirmation.Details, error) {
	start := time.Now()
	defer func() {
		metrics.ObserveBookingAPI(time.Since(start).Seconds())
	}()

	apiKey, err := c.getAPIKey(ctx)

	if err != nil {
		return confirmation.Details{}, err
	}

	bookingURL, err := c.getURL("booking")

	if err != nil {
		return confirmation.Details{}, err
	}

	body, err := json.Marshal(request)

	if err != nil {
		return confirmation.Details{}, fmt.Errorf("failed to marshal body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, bookingURL, bytes.NewReader(body))

	if err != nil {
		return confirmation.Details{}, fmt.Errorf("failed create new request: %w", err)
	}

	c.setHeaders(req)
	req.Header.Set("x-api-key", apiKey)

	res, err := c.client.Do(req)

	if err != nil {
		return confirmation.Details{}, fmt.Errorf("failed to send request: %w", err)
	}

	defer res.Body.Close()

	bodyBytes, readErr := io.ReadAll(res.Body)

	if res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden {
		c.cache.Delete(apiKeyCacheKey)
		return confirmation.Details{}, fmt.Errorf("%w: status %d", ErrUnauthorized, res.StatusCode)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		if readErr != nil {
			return confirmation.Details{}, fmt.Errorf("request failed with status %d; also failed reading body: %w", res.StatusCode, readErr)
		}
		return confirmation.Details{}, fmt.Errorf("request failed with status '%v' and body:\n%v", res.StatusCode, string(bodyBytes))
	}

	if readErr != nil {
		return confirmation.Details{}, fmt.Errorf("failed to read body: %w", readErr)
	}

	var response Response
	err = json.Unmarshal(bodyBytes, &response)

	if err != nil {
		return confirmation.Details{}, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	if len(response.BookingDetails.BookingID) == 0 {
		return confirmation.Details{}, fmt.Errorf("%w: missing bookingId", ErrInvalidResponse)
	}

	return response.BookingDetails, nil
}

func (c *Client) getAPIKey(ctx context.Context) (string, error) {
	if len(c.apiKey) != 0 {
		return c.apiKey, nil
	}

	cachedKey, found := c.cache.Get(apiKeyCacheKey)

	if found {
		return cachedKey.(string), nil
	}

	keyURL, err := c.getURL("key")

	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, keyURL, http.NoBody)

	if err != nil {
		return "", fmt.Errorf("failed create new request: %w", err)
	}

	c.setHeaders(req)

	res, err := c.client.Do(req)

	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}

	defer res.Body.Close()

	bodyBytes, readErr := io.ReadAll(res.Body)

	if res.StatusCode != http.StatusOK {
		if readErr != nil {
			return "", fmt.Errorf("request failed with status %d; also failed reading body: %w", res.StatusCode, readErr)
		}
		return "", fmt.Errorf("request failed with status '%v' and body:\n%v", res.StatusCode, string(bodyBytes))
	}

	if readErr != nil {
		return "", fmt.Errorf("failed to read body: %w", readErr)
	}

	var key KeyResponse
	err = json.Unmarshal(bodyBytes, &key)

	if err != nil {
		return "", fmt.Errorf("failed reading body: %w", err)
	}

	if len(key.Key) == 0 {
		return "", errors.New("booking api returned an empty key")
	}

	c.cache.Set(apiKeyCacheKey, key.Key, cache.DefaultExpiration)

	return key.Key, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}

func (c *Client) getURL(elem ...string) (string, error) {
	clientURL, err := url.JoinPath(c.baseURL, elem...)
	if err != nil {
		return "", fmt.Errorf("failed to create URL: %w", err)
	}

	return clientURL, nil
}
