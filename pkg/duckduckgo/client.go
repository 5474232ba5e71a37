// Package duckduckgo 通过 DuckDuckGo 的 HTML 版本进行无密钥文本搜索
package duckduckgo

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"github.com/iWorld-y/market_narrative/pkg/search"
)

const defaultEndpoint = "https://html.duckduckgo.com/html/"

// Client DuckDuckGo 搜索客户端
type Client struct {
	endpoint string
	client   *resty.Client
}

// NewClient 创建 DuckDuckGo 客户端，endpoint 为空时使用官方 HTML 端点，timeout 单位为秒
func NewClient(endpoint string, timeout int) *Client {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	t := time.Duration(timeout) * time.Second
	if t == 0 {
		t = 30 * time.Second
	}

	client := resty.New()
	client.SetTimeout(t)
	client.SetHeader("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	client.SetHeader("Referer", "https://html.duckduckgo.com/")

	return &Client{
		endpoint: endpoint,
		client:   client,
	}
}

// Ensure Client implements search.Searcher
var _ search.Searcher = (*Client)(nil)

// Search 执行搜索并解析结果页
func (c *Client) Search(ctx context.Context, req *search.Request) (*search.Response, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}

	res, err := c.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"q":  req.Query,
			"b":  "",
			"kl": "wt-wt",
		}).
		Post(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("duckduckgo error (status %d)", res.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.String()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	return &search.Response{Results: parseResults(doc, req.MaxResults)}, nil
}

// parseResults 提取 .result 块，跳过广告
func parseResults(doc *goquery.Document, max int) []search.Result {
	var results []search.Result

	doc.Find("div.result").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if s.HasClass("result--ad") {
			return true
		}

		anchor := s.Find("a.result__a").First()
		title := collapse(anchor.Text())
		if title == "" {
			return true
		}
		href, _ := anchor.Attr("href")

		results = append(results, search.Result{
			Title:   title,
			URL:     resolveLink(href),
			Content: collapse(s.Find(".result__snippet").First().Text()),
		})

		return max <= 0 || len(results) < max
	})

	return results
}

// resolveLink 还原 DuckDuckGo 跳转链接 (//duckduckgo.com/l/?uddg=...)
func resolveLink(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	if u.Scheme == "" && strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	return href
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
