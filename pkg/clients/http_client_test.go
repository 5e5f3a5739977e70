package clients

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingDoer struct{}

func (failingDoer) Do(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestHTTPClient_Send(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("X-Method", r.Method)
		w.Header().Set("X-Auth", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	client := NewHTTPClient()
	headers := http.Header{}
	headers.Set("Authorization", "Basic abc")

	status, body, respHeaders, err := client.Send(context.Background(), http.MethodPost, srv.URL, headers, []byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, `{"a":1}`, string(body))
	assert.Equal(t, http.MethodPost, respHeaders.Get("X-Method"))
	assert.Equal(t, "Basic abc", respHeaders.Get("X-Auth"))

	status, body, _, err = client.Send(context.Background(), http.MethodGet, srv.URL, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
	assert.Empty(t, body)
}

func TestHTTPClient_SendTransportError(t *testing.T) {
	client := NewHTTPClient()
	client.SetClient(failingDoer{})

	_, _, _, err := client.Send(context.Background(), http.MethodGet, "http://gateway.invalid", nil, nil)
	assert.Error(t, err)
}
