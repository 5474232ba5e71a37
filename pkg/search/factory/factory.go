package factory

import (
	"fmt"

	"github.com/iWorld-y/market_narrative/internal/config"
	"github.com/iWorld-y/market_narrative/pkg/duckduckgo"
	"github.com/iWorld-y/market_narrative/pkg/search"
	"github.com/iWorld-y/market_narrative/pkg/searxng"
	"github.com/iWorld-y/market_narrative/pkg/tavily"
)

// NewSearcher 根据配置创建搜索实例
func NewSearcher(cfg config.SearchConfig) (search.Searcher, error) {
	switch cfg.Provider {
	case "", "duckduckgo":
		return duckduckgo.NewClient(cfg.DuckDuckGo.BaseURL, cfg.DuckDuckGo.Timeout), nil

	case "tavily":
		if cfg.Tavily.APIKey == "" {
			return nil, fmt.Errorf("tavily api key is missing")
		}
		return tavily.NewClient(cfg.Tavily.APIKey), nil

	case "searxng":
		if cfg.SearXNG.BaseURL == "" {
			return nil, fmt.Errorf("searxng base url is missing")
		}
		return searxng.NewClient(cfg.SearXNG.BaseURL, cfg.SearXNG.Timeout), nil

	default:
		return nil, fmt.Errorf("unknown search provider: %s", cfg.Provider)
	}
}
