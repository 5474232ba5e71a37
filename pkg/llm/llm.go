// Package llm 封装生成式模型调用：单轮、非流式、纯文本
package llm

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/openai"

	"github.com/iWorld-y/market_narrative/internal/config"
)

// Generator 单次提示词生成接口
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiOpenAIBaseURL Gemini 的 OpenAI 兼容端点，openai 提供方未配置 base_url 时使用
const GeminiOpenAIBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

// NewGenerator 根据配置创建模型实例
func NewGenerator(ctx context.Context, cfg config.LLMConfig) (Generator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("llm api key is missing")
	}

	switch cfg.Provider {
	case "", "gemini":
		return NewGeminiGenerator(ctx, cfg.APIKey, cfg.Model)

	case "openai":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = GeminiOpenAIBaseURL
		}
		chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
			BaseURL: baseURL,
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
		})
		if err != nil {
			return nil, fmt.Errorf("LLM 初始化失败: %w", err)
		}
		return NewChatModelGenerator(chatModel), nil

	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}
