package escrow

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

// Client talks to the custody service that holds staked funds. The core
// treats the returned transaction references as opaque strings.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

type transferRequest struct {
	WalletAddress string `json:"wallet_address,omitempty"`
	Amount        int64  `json:"amount"`
}

type transferResponse struct {
	TxSignature string `json:"tx_signature"`
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ReleasePayout sends the user's share of a settled stake back to their
// wallet and returns the custody service's transaction reference.
func (c *Client) ReleasePayout(ctx context.Context, walletAddress string, amount int64) (string, error) {
	return c.post(ctx, "/escrow/release", transferRequest{
		WalletAddress: walletAddress,
		Amount:        amount,
	})
}

// TransferRake moves the platform's share to the treasury account.
func (c *Client) TransferRake(ctx context.Context, amount int64) (string, error) {
	return c.post(ctx, "/escrow/rake", transferRequest{
		Amount: amount,
	})
}

func (c *Client) post(ctx context.Context, path string, payload transferRequest) (string, error) {
	jsonData, err := sonic.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("escrow request encoding failed: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("escrow %s returned %d: %s", path, resp.StatusCode, string(body))
	}
	var out transferResponse
	if err = sonic.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("escrow response decoding failed: %w", err)
	}
	return out.TxSignature, nil
}
