package llm

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// ChatModelGenerator 把 eino ChatModel 适配为 Generator
type ChatModelGenerator struct {
	chatModel model.BaseChatModel
}

// NewChatModelGenerator 包装任意 eino 模型
func NewChatModelGenerator(cm model.BaseChatModel) *ChatModelGenerator {
	return &ChatModelGenerator{chatModel: cm}
}

// Ensure ChatModelGenerator implements Generator
var _ Generator = (*ChatModelGenerator)(nil)

// Generate 以一条用户消息调用模型
func (g *ChatModelGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	messages := []*schema.Message{
		schema.UserMessage(prompt),
	}

	resp, err := g.chatModel.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("chat model generation failed: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("chat model returned no message")
	}
	return resp.Content, nil
}
