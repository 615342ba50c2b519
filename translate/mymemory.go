package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const DefaultEndpoint = "https://api.mymemory.translated.net/get"

// Config configures a MyMemory client.
type Config struct {
	Endpoint   string
	SourceLang string
	TargetLang string

	// Email raises the daily quota of the free API when set.
	Email string

	RatePerSecond float64
	Timeout       time.Duration
}

// MyMemory translates words with the MyMemory translation API.
type MyMemory struct {
	cfg     Config
	client  *http.Client
	limiter *rate.Limiter
}

// NewMyMemory creates a client. Unset fields default to the public
// endpoint, automatic source language detection, English as the target,
// two requests per second and a ten second timeout.
func NewMyMemory(cfg Config) *MyMemory {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.SourceLang == "" || cfg.SourceLang == "auto" {
		cfg.SourceLang = "autodetect"
	}
	if cfg.TargetLang == "" {
		cfg.TargetLang = "en"
	}
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = 2
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &MyMemory{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), 1),
	}
}

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
	ResponseStatus  json.Number `json:"responseStatus"`
	ResponseDetails string      `json:"responseDetails"`
}

func (m *MyMemory) Translate(ctx context.Context, word string) (string, error) {
	if err := m.limiter.Wait(ctx); err != nil {
		return "", err
	}

	q := url.Values{}
	q.Set("q", word)
	q.Set("langpair", m.cfg.SourceLang+"|"+m.cfg.TargetLang)
	if m.cfg.Email != "" {
		q.Set("de", m.cfg.Email)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.cfg.Endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}

	res, err := m.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translation service returned %s", res.Status)
	}

	var body myMemoryResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decoding translation response: %w", err)
	}

	if status := body.ResponseStatus.String(); status != "" && status != "200" {
		return "", fmt.Errorf("translation service status %s: %s", status, body.ResponseDetails)
	}

	return body.ResponseData.TranslatedText, nil
}
