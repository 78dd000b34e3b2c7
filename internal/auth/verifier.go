package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// verifiedMarker is the literal the external authenticator returns as the
// first element of its response array when the credentials check out.
const verifiedMarker = "Verified"

// Verifier checks an email/password pair against the external authentication
// service. The service owns all password material; this client only relays
// credentials and reads the verdict.
type Verifier struct {
	url     string
	retries int
	client  *http.Client
}

// NewVerifier creates a verifier for the given endpoint. The timeout bounds
// each attempt; retries is the number of additional attempts made after a
// transport failure (a decisive response is never retried).
func NewVerifier(url string, timeout time.Duration, retries int) *Verifier {
	return &Verifier{
		url:     url,
		retries: retries,
		client:  &http.Client{Timeout: timeout},
	}
}

type verifyRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Verify submits the credentials and reports whether the external service
// verified them. A non-200 status or an unexpected payload shape counts as a
// rejection, not an error; errors are transport-level only.
func (v *Verifier) Verify(ctx context.Context, email, password string) (bool, error) {
	body, err := json.Marshal(verifyRequest{Email: email, Password: password})
	if err != nil {
		return false, fmt.Errorf("encoding verify request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= v.retries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.url, bytes.NewReader(body))
		if err != nil {
			return false, fmt.Errorf("building verify request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := v.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		verified := decodeVerdict(resp)
		resp.Body.Close()
		return verified, nil
	}
	return false, fmt.Errorf("verifying credentials: %w", lastErr)
}

func decodeVerdict(resp *http.Response) bool {
	if resp.StatusCode != http.StatusOK {
		return false
	}
	var verdict []string
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		return false
	}
	return len(verdict) > 0 && verdict[0] == verifiedMarker
}
