package recaptcha

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hospital-booking/config"

	"github.com/sirupsen/logrus"
)

const defaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Verifier checks bot-challenge tokens against the siteverify endpoint.
// With no secret configured every token is accepted.
type Verifier struct {
	secret     string
	verifyURL  string
	httpClient *http.Client
	log        *logrus.Logger
}

func NewVerifier(cfg config.RecaptchaConfig, log *logrus.Logger) *Verifier {
	verifyURL := cfg.VerifyURL
	if verifyURL == "" {
		verifyURL = defaultVerifyURL
	}
	return &Verifier{
		secret:     cfg.Secret,
		verifyURL:  verifyURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

func (v *Verifier) Enabled() bool {
	return v.secret != ""
}

// Verify reports whether token passes the challenge. Transport errors count as failure.
func (v *Verifier) Verify(ctx context.Context, token string) bool {
	if !v.Enabled() {
		return true
	}
	if token == "" {
		return false
	}

	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		v.log.Warnf("Failed to build reCAPTCHA request: %+v", err)
		return false
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		v.log.Warnf("reCAPTCHA verification request failed: %+v", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.log.Warnf("reCAPTCHA verification returned status %d", resp.StatusCode)
		return false
	}

	var result struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false
	}
	return result.Success
}
