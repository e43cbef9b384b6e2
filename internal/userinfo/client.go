package userinfo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"oidcsync/internal/metrics"
	"oidcsync/internal/models"
	"oidcsync/internal/version"
)

// Client fetches extended profile attributes from the provider's userinfo
// endpoint. It issues a single request per call, carries the bearer token,
// and leaves retries and deadlines to the caller and the injected transport.
type Client struct {
	http      *http.Client
	userAgent string
	logger    *slog.Logger
}

func NewClient(httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		http:      httpClient,
		userAgent: "oidcsync/" + version.GetVersion(),
		logger:    logger,
	}
}

// Fetch retrieves the userinfo claims for the given bearer token. Non-success
// responses surface the provider's error object as a *ProviderError;
// transport failures as a *NetworkError.
func (c *Client) Fetch(ctx context.Context, endpoint string, token *oauth2.Token) (*models.UserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build userinfo request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UserInfoFetchDuration.WithLabelValues(metrics.FetchOutcomeError).Observe(time.Since(start).Seconds())
		return nil, &NetworkError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UserInfoFetchDuration.WithLabelValues(metrics.FetchOutcomeError).Observe(time.Since(start).Seconds())
		return nil, &NetworkError{Endpoint: endpoint, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		metrics.UserInfoFetchDuration.WithLabelValues(metrics.FetchOutcomeProtocol).Observe(time.Since(start).Seconds())
		return nil, parseErrorResponse(resp, body)
	}

	var info models.UserInfo
	if err := json.Unmarshal(body, &info); err != nil {
		metrics.UserInfoFetchDuration.WithLabelValues(metrics.FetchOutcomeProtocol).Observe(time.Since(start).Seconds())
		return nil, &ProviderError{
			Code:        "invalid_response",
			Description: fmt.Sprintf("failed to decode userinfo response: %v", err),
			Status:      resp.StatusCode,
		}
	}

	metrics.UserInfoFetchDuration.WithLabelValues(metrics.FetchOutcomeSuccess).Observe(time.Since(start).Seconds())

	c.logger.Debug("fetched userinfo", "endpoint", endpoint, "subject", info.Subject)

	return &info, nil
}

func parseErrorResponse(resp *http.Response, body []byte) *ProviderError {
	provErr := &ProviderError{Status: resp.StatusCode}

	if err := json.Unmarshal(body, provErr); err != nil || provErr.Code == "" {
		// Some providers send the error code in the WWW-Authenticate header
		// with an empty or non-JSON body.
		provErr.Code = "server_error"
		provErr.Description = http.StatusText(resp.StatusCode)
	}

	return provErr
}
