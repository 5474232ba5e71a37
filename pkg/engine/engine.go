package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iWorld-y/market_narrative/internal/config"
	"github.com/iWorld-y/market_narrative/internal/logger"
	"github.com/iWorld-y/market_narrative/pkg/aggregator"
	"github.com/iWorld-y/market_narrative/pkg/llm"
	"github.com/iWorld-y/market_narrative/pkg/mailer"
	"github.com/iWorld-y/market_narrative/pkg/marketdate"
	"github.com/iWorld-y/market_narrative/pkg/model"
	"github.com/iWorld-y/market_narrative/pkg/report"
	"github.com/iWorld-y/market_narrative/pkg/search/factory"
)

var (
	// ErrNoSearchData 所有查询失败或均无结果
	ErrNoSearchData = errors.New("no search data found")
	// ErrGeneration 模型调用失败或返回空报告
	ErrGeneration = errors.New("report generation failed")
	// ErrDispatch 渲染、收件人解析或 SMTP 发送失败
	ErrDispatch = errors.New("email dispatch failed")
)

// SubjectFormat 邮件主题，%s 为市场日期
const SubjectFormat = "[Market Narrative] %s Daily Report"

// Aggregator 搜索汇总
type Aggregator interface {
	Aggregate(ctx context.Context, date string) model.SearchContext
}

// ReportGenerator 报告生成
type ReportGenerator interface {
	Generate(ctx context.Context, date, searchContext string) (string, error)
}

// Dispatcher 邮件发送
type Dispatcher interface {
	Send(ctx context.Context, subject, reportMarkdown string) error
}

// Engine 日报流水线：各阶段严格顺序执行，任一阶段失败立即终止
type Engine struct {
	cfg        config.Config
	aggregator Aggregator
	generator  ReportGenerator
	dispatcher Dispatcher
	now        func() time.Time
}

// Option 用于替换默认组件
type Option func(*Engine)

// WithClock 替换时钟
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New 使用给定组件创建引擎
func New(cfg config.Config, agg Aggregator, gen ReportGenerator, disp Dispatcher, opts ...Option) *Engine {
	e := &Engine{
		cfg:        cfg,
		aggregator: agg,
		generator:  gen,
		dispatcher: disp,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewEngine 根据配置创建搜索、模型和邮件组件；不会发起任何网络请求
func NewEngine(ctx context.Context, cfg config.Config) (*Engine, error) {
	searcher, err := factory.NewSearcher(cfg.Search)
	if err != nil {
		return nil, fmt.Errorf("搜索客户端初始化失败: %w", err)
	}

	gen, err := llm.NewGenerator(ctx, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("LLM 初始化失败: %w", err)
	}

	return New(
		cfg,
		aggregator.New(searcher, cfg.Search.MaxResults),
		report.NewGenerator(gen),
		mailer.NewDispatcher(cfg.Email, mailer.NewSMTPSender(cfg.Email)),
	), nil
}

// Run 执行一次完整流程:
// ValidateConfig -> ResolveDate -> Aggregate -> Generate -> Dispatch -> Done
func (e *Engine) Run(ctx context.Context) error {
	if err := e.cfg.Validate(); err != nil {
		return stageErr(StageValidateConfig, err)
	}

	date := marketdate.Resolve(e.now())
	logger.Log.Infof("市场日期: %s", date)

	sc := e.aggregator.Aggregate(ctx, date)
	logger.Log.Infof("搜索完成: %d/%d 个查询成功, 共 %d 条结果",
		sc.Succeeded(), len(sc.Outcomes), sc.Hits())
	searchText := sc.Text()
	if searchText == "" {
		return stageErr(StageAggregate, ErrNoSearchData)
	}

	reportMarkdown, err := e.generator.Generate(ctx, date, searchText)
	if err != nil {
		return stageErr(StageGenerate, fmt.Errorf("%w: %w", ErrGeneration, err))
	}
	if reportMarkdown == "" {
		return stageErr(StageGenerate, ErrGeneration)
	}

	subject := fmt.Sprintf(SubjectFormat, date)
	if err := e.dispatcher.Send(ctx, subject, reportMarkdown); err != nil {
		return stageErr(StageDispatch, fmt.Errorf("%w: %w", ErrDispatch, err))
	}

	logger.Log.Infof("✅ %s 日报已发送", date)
	return nil
}

// ExitCode 成功返回 0，其余情况返回 1
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
