package tavily

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/market_narrative/pkg/search"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("tvly-test")
	c.endpoint = srv.URL + "/search"
	return c
}

func TestClient_Search(t *testing.T) {
	var got SearchRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer tvly-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"query":"KOSPI","results":[
			{"title":"KOSPI closes higher","url":"https://a","content":"up 1%","score":0.9},
			{"title":"KOSDAQ slips","url":"https://b","content":"down 0.5%","score":0.8},
			{"title":"Won steady","url":"https://c","content":"flat","score":0.7},
			{"title":"Extra","url":"https://d","content":"ignored","score":0.1}
		]}`))
	})

	resp, err := c.Search(context.Background(), &search.Request{Query: "KOSPI", MaxResults: 3})
	require.NoError(t, err)

	assert.Equal(t, "KOSPI", got.Query)
	assert.Equal(t, "general", got.Topic)
	assert.Equal(t, 3, got.MaxResults)

	require.Len(t, resp.Results, 3)
	assert.Equal(t, "KOSPI closes higher", resp.Results[0].Title)
	assert.Equal(t, "up 1%", resp.Results[0].Content)
	assert.Equal(t, "https://c", resp.Results[2].URL)
}

func TestClient_Search_APIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"invalid key"}`))
	})

	_, err := c.Search(context.Background(), &search.Request{Query: "x", MaxResults: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}
