package signature

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

// Verifier asks an external service whether a signed message proves control
// of a wallet. Key math stays out of process.
type Verifier struct {
	BaseURL    string
	HTTPClient *http.Client
}

type verifyRequest struct {
	WalletAddress string `json:"wallet_address"`
	Message       string `json:"message"`
	Signature     string `json:"signature"`
}

type verifyResponse struct {
	Valid bool `json:"valid"`
}

func NewVerifier(baseURL string) *Verifier {
	return &Verifier{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (v *Verifier) Verify(walletAddress, message, signature string) (bool, error) {
	jsonData, err := sonic.Marshal(verifyRequest{
		WalletAddress: walletAddress,
		Message:       message,
		Signature:     signature,
	})
	if err != nil {
		return false, fmt.Errorf("verify request encoding failed: %w", err)
	}
	resp, err := v.HTTPClient.Post(v.BaseURL+"/verify", "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("verifier returned %d: %s", resp.StatusCode, string(body))
	}
	var out verifyResponse
	if err = sonic.Unmarshal(body, &out); err != nil {
		return false, fmt.Errorf("verifier response decoding failed: %w", err)
	}
	return out.Valid, nil
}
