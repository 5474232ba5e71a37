package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultGeminiModel 未配置模型名时使用
const DefaultGeminiModel = "gemini-flash-latest"

// contentGenerator 是 genai.Models 中用到的部分
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator 基于 Gemini API 的生成器
type GeminiGenerator struct {
	models contentGenerator
	model  string
}

// NewGeminiGenerator 创建 Gemini 生成器，超时沿用 SDK 默认值
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize genai client: %w", err)
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	return &GeminiGenerator{models: client.Models, model: model}, nil
}

// Ensure GeminiGenerator implements Generator
var _ Generator = (*GeminiGenerator)(nil)

// Generate 发送单条用户提示词，返回第一个含文本的候选结果
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("gemini returned no response")
	}

	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		var sb strings.Builder
		for _, part := range candidate.Content.Parts {
			if part != nil && part.Text != "" {
				sb.WriteString(part.Text)
			}
		}
		if sb.Len() > 0 {
			return sb.String(), nil
		}
	}

	return "", nil
}
