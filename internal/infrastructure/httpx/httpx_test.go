package httpx

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func httpClientRT(rt http.RoundTripper) *http.Client {
	return &http.Client{Transport: rt, Timeout: 2 * time.Second}
}

func TestGetJSON_OK(t *testing.T) {
	var calls int
	rt := httpClientRT(rtFunc(func(r *http.Request) (*http.Response, error) {
		calls++
		require.Equal(t, http.MethodGet, r.Method)
		body := `{"ok": true}`
		return &http.Response{StatusCode: 200, Body: io.NopCloser(strings.NewReader(body)), Header: make(http.Header), Request: r}, nil
	}))
	var out struct {
		OK bool `json:"ok"`
	}
	c := &Client{HTTP: rt}
	require.NoError(t, c.GetJSON(context.Background(), "http://example.com", &out))
	require.True(t, out.OK)
	require.Equal(t, 1, calls)
}

func TestGetJSON_NoRetryOn500(t *testing.T) {
	var calls int
	rt := httpClientRT(rtFunc(func(r *http.Request) (*http.Response, error) {
		calls++
		return &http.Response{StatusCode: 500, Body: io.NopCloser(strings.NewReader("boom")), Header: make(http.Header), Request: r}, nil
	}))
	var out any
	c := &Client{HTTP: rt}
	err := c.GetJSON(context.Background(), "http://example.com", &out)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, 500, se.Code)
	require.Equal(t, "boom", se.Body)
	require.Equal(t, 1, calls)
}

func TestGetJSON_TransportError(t *testing.T) {
	rt := httpClientRT(rtFunc(func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	}))
	var out any
	c := &Client{HTTP: rt}
	err := c.GetJSON(context.Background(), "http://example.com", &out)
	require.ErrorContains(t, err, "do request")
}

func TestGetJSON_DecodeError(t *testing.T) {
	rt := httpClientRT(rtFunc(func(r *http.Request) (*http.Response, error) {
		// invalid json
		return &http.Response{StatusCode: 200, Body: io.NopCloser(bytes.NewBufferString("{x")), Header: make(http.Header), Request: r}, nil
	}))
	var out map[string]any
	c := &Client{HTTP: rt}
	err := c.GetJSON(context.Background(), "http://example.com", &out)
	require.ErrorContains(t, err, "decode")
}
