package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/iWorld-y/market_narrative/internal/config"
)

// mockModels 模拟 genai.Models
type mockModels struct {
	resp     *genai.GenerateContentResponse
	err      error
	model    string
	contents []*genai.Content
}

func (m *mockModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	m.model = model
	m.contents = contents
	return m.resp, m.err
}

func textCandidate(parts ...string) *genai.Candidate {
	c := &genai.Candidate{Content: &genai.Content{}}
	for _, p := range parts {
		c.Content.Parts = append(c.Content.Parts, &genai.Part{Text: p})
	}
	return c
}

func TestGeminiGenerator_Generate(t *testing.T) {
	m := &mockModels{resp: &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: nil},
			textCandidate(""),
			textCandidate("# Global Market ", "Narrative Report"),
			textCandidate("ignored"),
		},
	}}
	g := &GeminiGenerator{models: m, model: DefaultGeminiModel}

	out, err := g.Generate(context.Background(), "prompt body")
	require.NoError(t, err)
	assert.Equal(t, "# Global Market Narrative Report", out)
	assert.Equal(t, "gemini-flash-latest", m.model)
	require.Len(t, m.contents, 1)
	require.Len(t, m.contents[0].Parts, 1)
	assert.Equal(t, "prompt body", m.contents[0].Parts[0].Text)
}

func TestGeminiGenerator_Errors(t *testing.T) {
	g := &GeminiGenerator{models: &mockModels{err: errors.New("quota exceeded")}, model: "m"}
	_, err := g.Generate(context.Background(), "p")
	assert.ErrorContains(t, err, "quota exceeded")

	g = &GeminiGenerator{models: &mockModels{}, model: "m"}
	_, err = g.Generate(context.Background(), "p")
	assert.Error(t, err)

	g = &GeminiGenerator{models: &mockModels{resp: &genai.GenerateContentResponse{}}, model: "m"}
	out, err := g.Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Empty(t, out)
}

// mockChatModel 模拟 eino ChatModel
type mockChatModel struct {
	reply *schema.Message
	err   error
	input []*schema.Message
}

func (m *mockChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	m.input = input
	return m.reply, m.err
}

func (m *mockChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("not supported")
}

func TestChatModelGenerator_Generate(t *testing.T) {
	cm := &mockChatModel{reply: schema.AssistantMessage("## [Big Picture]", nil)}
	out, err := NewChatModelGenerator(cm).Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "## [Big Picture]", out)
	require.Len(t, cm.input, 1)
	assert.Equal(t, schema.User, cm.input[0].Role)
	assert.Equal(t, "hello", cm.input[0].Content)

	_, err = NewChatModelGenerator(&mockChatModel{err: errors.New("boom")}).Generate(context.Background(), "x")
	assert.ErrorContains(t, err, "boom")

	_, err = NewChatModelGenerator(&mockChatModel{}).Generate(context.Background(), "x")
	assert.Error(t, err)
}

func TestNewGenerator(t *testing.T) {
	ctx := context.Background()

	_, err := NewGenerator(ctx, config.LLMConfig{Provider: "gemini"})
	assert.ErrorContains(t, err, "api key")

	_, err = NewGenerator(ctx, config.LLMConfig{Provider: "claude", APIKey: "k"})
	assert.ErrorContains(t, err, "unknown llm provider")

	g, err := NewGenerator(ctx, config.LLMConfig{Provider: "gemini", APIKey: "k"})
	require.NoError(t, err)
	require.IsType(t, &GeminiGenerator{}, g)
	assert.Equal(t, DefaultGeminiModel, g.(*GeminiGenerator).model)

	g, err = NewGenerator(ctx, config.LLMConfig{Provider: "openai", APIKey: "k", Model: "gemini-flash-latest"})
	require.NoError(t, err)
	assert.IsType(t, &ChatModelGenerator{}, g)
}
