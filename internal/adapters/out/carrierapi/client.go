// Package carrierapi implements the lookup protocol spoken by the carrier
// parcel APIs the resolution engine probes. The upstream expects a
// form-encoded POST against the account's base URL and answers with a JSON
// document on success, frequently with HTML on errors. The client treats
// every upstream misbehavior as an unsuccessful lookup rather than an error,
// so one flaky account never aborts a resolution pass.
package carrierapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"parceltrack/internal/core/domain/model/carrier"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

const (
	// DefaultTimeout bounds one lookup attempt when no timeout is configured.
	DefaultTimeout = 10 * time.Second

	// maxResponseBytes caps how much of an upstream response is read.
	maxResponseBytes = 1 << 20
)

// Client performs tracking-number lookups against carrier accounts.
// It implements ports.CarrierAPIClient.
type Client struct {
	httpc *http.Client
}

// NewClient creates a lookup client with the given per-attempt timeout.
// A non-positive timeout falls back to DefaultTimeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpc: &http.Client{Timeout: timeout},
	}
}

// Lookup asks the account's upstream endpoint whether it knows the tracking
// number. Transport failures, non-2xx answers, and non-JSON bodies all come
// back as Success=false with a nil error; the error return is reserved for
// invalid input.
func (c *Client) Lookup(
	ctx context.Context,
	account *carrier.Account,
	trackingNumber kernel.TrackingNumber,
) (carrier.LookupResult, error) {
	if err := account.Validate(); err != nil {
		return carrier.LookupResult{}, err
	}
	if err := trackingNumber.Validate(); err != nil {
		return carrier.LookupResult{}, err
	}

	form := url.Values{}
	form.Set("action", "get")
	form.Set("id", account.ExternalID())
	form.Set("cle_api", account.APIKey())
	form.Set("code_barre", trackingNumber.String())

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, account.BaseURL(), strings.NewReader(form.Encode()))
	if err != nil {
		return carrier.LookupResult{}, errs.NewValueIsInvalidErrorWithCause("baseUrl", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return carrier.LookupResult{Success: false}, nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return carrier.LookupResult{Success: false, StatusCode: resp.StatusCode}, nil
	}

	result := carrier.LookupResult{StatusCode: resp.StatusCode}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return result, nil
	}

	// Error pages come back as HTML with status 200 from some upstreams;
	// only a parseable JSON object counts as a successful lookup.
	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil || data == nil {
		return result, nil
	}

	result.Success = true
	result.Data = data
	return result, nil
}
