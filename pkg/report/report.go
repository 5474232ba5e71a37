package report

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/iWorld-y/market_narrative/internal/logger"
	"github.com/iWorld-y/market_narrative/pkg/llm"
)

// ErrEmptyReport 模型返回空文本
var ErrEmptyReport = errors.New("model returned an empty report")

// Generator 报告生成器；返回的 Markdown 不做结构校验
type Generator struct {
	llm llm.Generator
}

// NewGenerator 创建报告生成器
func NewGenerator(g llm.Generator) *Generator {
	return &Generator{llm: g}
}

// Generate 调用一次模型生成报告，不重试
func (g *Generator) Generate(ctx context.Context, date, searchContext string) (string, error) {
	logger.Log.Info("正在调用模型生成报告...")

	prompt := BuildPrompt(date, searchContext)
	logger.Log.Debugf("提示词长度: %d", len(prompt))

	text, err := g.llm.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate report: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyReport
	}

	logger.Log.Infof("报告生成完成 (%d 字节)", len(text))
	return text, nil
}
