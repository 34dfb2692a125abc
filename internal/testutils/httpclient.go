package testutils

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type TestRequestOpt func(r *http.Request)

func WithHeader(name, value string) TestRequestOpt {
	return func(r *http.Request) {
		r.Header.Set(name, value)
	}
}

func DoTestRequest(
	t *testing.T, ts *httptest.Server,
	method, path string, body io.Reader,
	opts ...TestRequestOpt,
) (*http.Response, string) {
	req, err := http.NewRequest(method, ts.URL+path, body)
	require.NoError(t, err)

	for _, opt := range opts {
		opt(req)
	}

	// disable redirects
	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(respBody)
}
