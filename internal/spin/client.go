package spin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/osse101/SlotReveal_Go/internal/domain"
)

// OutcomeClient requests one authoritative outcome per spin.
// Every failure it returns wraps domain.ErrTransport.
type OutcomeClient interface {
	RequestOutcome(ctx context.Context, wager decimal.Decimal) (*domain.SpinResponse, error)
}

// APIClient talks to the outcome engine over HTTP/JSON.
// Each RequestOutcome is exactly one POST; there is no retry.
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout: DefaultHTTPTimeout,
		},
		APIKey: apiKey,
	}
}

// RequestOutcome posts the wager to /api/spin and decodes the outcome
func (c *APIClient) RequestOutcome(ctx context.Context, wager decimal.Decimal) (*domain.SpinResponse, error) {
	bet := wager.InexactFloat64()
	body, err := json.Marshal(domain.SpinRequest{Bet: &bet})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgMarshalRequest, err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, SpinPath, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, fmt.Errorf(ErrMsgUnexpectedStatus, domain.ErrTransport, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out domain.SpinResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeResponse, domain.ErrTransport, err)
	}
	return &out, nil
}

func (c *APIClient) doRequest(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateRequest, err)
	}

	req.Header.Set(HeaderContentType, ContentTypeJSON)
	if c.APIKey != "" {
		req.Header.Set(HeaderAPIKey, c.APIKey)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSendRequest, domain.ErrTransport, err)
	}
	return resp, nil
}
