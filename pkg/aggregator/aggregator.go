package aggregator

import (
	"context"
	"fmt"

	"github.com/iWorld-y/market_narrative/internal/logger"
	"github.com/iWorld-y/market_narrative/pkg/model"
	"github.com/iWorld-y/market_narrative/pkg/search"
)

// DefaultMaxResults 每个查询保留的结果数
const DefaultMaxResults = 3

// queryTemplates 固定的查询主题，%s 为市场日期
var queryTemplates = []string{
	"Nasdaq S&P 500 Russell 2000 closing price %s",
	"US 10 Year Treasury Yield US Dollar Index %s",
	"Nikkei 225 Shanghai Composite Euro Stoxx 50 closing price %s",
	"KOSPI KOSDAQ closing price %s",
	"top financial news Bloomberg Reuters %s",
	"key market narratives trending stocks %s",
	"Asian European market summary %s",
	"Korea stock market news %s",
	"analyst buy sell ratings Goldman Sachs Bank of America %s",
}

// Queries 返回指定日期的全部查询语句，顺序固定
func Queries(date string) []string {
	queries := make([]string, 0, len(queryTemplates))
	for _, tpl := range queryTemplates {
		queries = append(queries, fmt.Sprintf(tpl, date))
	}
	return queries
}

// Aggregator 依次执行市场相关查询并汇总结果
type Aggregator struct {
	searcher   search.Searcher
	maxResults int
}

// New 创建汇总器，maxResults <= 0 时使用 DefaultMaxResults
func New(searcher search.Searcher, maxResults int) *Aggregator {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return &Aggregator{searcher: searcher, maxResults: maxResults}
}

// Aggregate 顺序执行所有查询；单个查询失败只记录日志并跳过，不会中断汇总
func (a *Aggregator) Aggregate(ctx context.Context, date string) model.SearchContext {
	logger.Log.Infof("正在搜索 %s 的市场数据...", date)

	var out model.SearchContext
	for _, q := range Queries(date) {
		out.Outcomes = append(out.Outcomes, a.run(ctx, q))
	}
	return out
}

func (a *Aggregator) run(ctx context.Context, query string) model.QueryOutcome {
	outcome := model.QueryOutcome{Query: query}

	resp, err := a.searcher.Search(ctx, &search.Request{
		Query:      query,
		MaxResults: a.maxResults,
	})
	if err != nil {
		logger.Log.Errorf("搜索失败 [%s]: %v", query, err)
		outcome.Err = err
		return outcome
	}
	if resp == nil {
		logger.Log.Debugf("搜索 [%s] 无结果", query)
		return outcome
	}

	for _, r := range search.Limit(resp.Results, a.maxResults) {
		outcome.Snippets = append(outcome.Snippets, model.Snippet{
			Title: r.Title,
			Body:  r.Content,
			Link:  r.URL,
		})
	}
	logger.Log.Debugf("搜索 [%s] 返回 %d 条结果", query, len(outcome.Snippets))

	return outcome
}
