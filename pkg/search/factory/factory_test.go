package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/market_narrative/internal/config"
	"github.com/iWorld-y/market_narrative/pkg/duckduckgo"
	"github.com/iWorld-y/market_narrative/pkg/searxng"
	"github.com/iWorld-y/market_narrative/pkg/tavily"
)

func TestNewSearcher(t *testing.T) {
	s, err := NewSearcher(config.SearchConfig{})
	require.NoError(t, err)
	assert.IsType(t, &duckduckgo.Client{}, s)

	s, err = NewSearcher(config.SearchConfig{Provider: "tavily", Tavily: config.TavilyConfig{APIKey: "k"}})
	require.NoError(t, err)
	assert.IsType(t, &tavily.Client{}, s)

	s, err = NewSearcher(config.SearchConfig{Provider: "searxng", SearXNG: config.SearXNGConfig{BaseURL: "http://localhost:8080"}})
	require.NoError(t, err)
	assert.IsType(t, &searxng.Client{}, s)
}

func TestNewSearcher_Errors(t *testing.T) {
	_, err := NewSearcher(config.SearchConfig{Provider: "tavily"})
	assert.ErrorContains(t, err, "tavily api key")

	_, err = NewSearcher(config.SearchConfig{Provider: "searxng"})
	assert.ErrorContains(t, err, "searxng base url")

	_, err = NewSearcher(config.SearchConfig{Provider: "bing"})
	assert.ErrorContains(t, err, "unknown search provider")
}
