package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMyMemoryTranslate(t *testing.T) {
	var queries []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.RawQuery)
		assert.Equal(t, "de|en", r.URL.Query().Get("langpair"))
		assert.Equal(t, "me@example.org", r.URL.Query().Get("de"))

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("q") {
		case "Hund":
			w.Write([]byte(`{"responseData":{"translatedText":"dog"},"responseStatus":200,"responseDetails":""}`))
		case "Quota":
			w.Write([]byte(`{"responseData":{"translatedText":""},"responseStatus":"429","responseDetails":"QUOTA EXCEEDED"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	client := NewMyMemory(Config{
		Endpoint:      server.URL,
		SourceLang:    "de",
		TargetLang:    "en",
		Email:         "me@example.org",
		RatePerSecond: 1000,
	})

	translation, err := client.Translate(context.Background(), "Hund")
	require.NoError(t, err)
	assert.Equal(t, "dog", translation)

	_, err = client.Translate(context.Background(), "Quota")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "QUOTA EXCEEDED")

	_, err = client.Translate(context.Background(), "Fehler")
	assert.Error(t, err)

	assert.Len(t, queries, 3)
}

func TestMyMemoryDefaults(t *testing.T) {
	client := NewMyMemory(Config{SourceLang: "auto"})

	assert.Equal(t, DefaultEndpoint, client.cfg.Endpoint)
	assert.Equal(t, "autodetect", client.cfg.SourceLang)
	assert.Equal(t, "en", client.cfg.TargetLang)
	assert.Equal(t, 10*time.Second, client.client.Timeout)
}

func TestMyMemoryHonoursContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))
	defer server.Close()

	client := NewMyMemory(Config{Endpoint: server.URL})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Translate(ctx, "Hund")
	assert.ErrorIs(t, err, context.Canceled)
}
