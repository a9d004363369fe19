package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient(t *testing.T) {
	client := NewHTTPClient(5 * time.Second)
	assert.Equal(t, 5*time.Second, client.Timeout)

	client = NewHTTPClient(0)
	assert.Equal(t, defaultTimeout, client.Timeout)
}

func TestSetBrowserHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	}))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	SetBrowserHeaders(req)

	resp, err := NewHTTPClient(time.Second).Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, BrowserUserAgent, got.Get("User-Agent"))
	assert.Equal(t, FeedAccept, got.Get("Accept"))
	assert.Equal(t, AcceptLanguage, got.Get("Accept-Language"))
}
