package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// 环境变量名
const (
	EnvConfigPath     = "MARKET_NARRATIVE_CONFIG"
	EnvGeminiAPIKey   = "GEMINI_API_KEY"
	EnvAppPassword    = "GMAIL_APP_PASSWORD"
	EnvEmailSender    = "EMAIL_SENDER"
	EnvEmailReceiver  = "EMAIL_RECEIVER"
	EnvLLMProvider    = "LLM_PROVIDER"
	EnvLLMModel       = "LLM_MODEL"
	EnvLLMBaseURL     = "LLM_BASE_URL"
	EnvSearchProvider = "SEARCH_PROVIDER"
	EnvTavilyAPIKey   = "TAVILY_API_KEY"
	EnvSearXNGBaseURL = "SEARXNG_BASE_URL"
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFile        = "LOG_FILE"
)

// DefaultPath 默认的 YAML 配置文件路径，不存在时跳过
const DefaultPath = "configs/config.yaml"

// ErrMissingConfig 缺少必填配置
var ErrMissingConfig = errors.New("required configuration is missing")

// Config 项目配置结构体，加载后只读，按值传递给各组件
type Config struct {
	LLM    LLMConfig    `yaml:"llm"`
	Search SearchConfig `yaml:"search"`
	Email  EmailConfig  `yaml:"email"`
	Log    LogConfig    `yaml:"log"`
}

// LLMConfig 生成模型相关配置
type LLMConfig struct {
	Provider string `yaml:"provider"` // gemini or openai
	BaseURL  string `yaml:"base_url"`
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
}

// SearchConfig 搜索相关配置
type SearchConfig struct {
	Provider   string           `yaml:"provider"` // duckduckgo, tavily or searxng
	MaxResults int              `yaml:"max_results"`
	DuckDuckGo DuckDuckGoConfig `yaml:"duckduckgo"`
	Tavily     TavilyConfig     `yaml:"tavily"`
	SearXNG    SearXNGConfig    `yaml:"searxng"`
}

// DuckDuckGoConfig DuckDuckGo 配置
type DuckDuckGoConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout int    `yaml:"timeout"` // 秒
}

// TavilyConfig Tavily 配置
type TavilyConfig struct {
	APIKey string `yaml:"api_key"`
}

// SearXNGConfig SearXNG 配置
type SearXNGConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout int    `yaml:"timeout"` // 秒
}

// EmailConfig 邮件发送配置
type EmailConfig struct {
	Sender      string `yaml:"sender"`
	Receiver    string `yaml:"receiver"` // 单个地址或逗号分隔的地址列表
	AppPassword string `yaml:"app_password"`
	SMTPHost    string `yaml:"smtp_host"`
	SMTPPort    int    `yaml:"smtp_port"`
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default 返回默认配置
func Default() Config {
	return Config{
		LLM: LLMConfig{
			Provider: "gemini",
			Model:    "gemini-flash-latest",
		},
		Search: SearchConfig{
			Provider:   "duckduckgo",
			MaxResults: 3,
		},
		Email: EmailConfig{
			SMTPHost: "smtp.gmail.com",
			SMTPPort: 465,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load 依次合并默认值、YAML 文件、.env 文件和进程环境变量
// path 为空时使用 MARKET_NARRATIVE_CONFIG 或 DefaultPath；文件不存在不算错误
func Load(path string) (Config, error) {
	cfg := Default()

	// .env 不会覆盖已存在的环境变量
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return cfg, fmt.Errorf("read config file %s: %w", path, err)
	}

	cfg.loadFromEnv()
	return cfg, nil
}

func (c *Config) loadFromEnv() {
	setString(&c.LLM.APIKey, EnvGeminiAPIKey)
	setString(&c.LLM.Provider, EnvLLMProvider)
	setString(&c.LLM.Model, EnvLLMModel)
	setString(&c.LLM.BaseURL, EnvLLMBaseURL)

	setString(&c.Search.Provider, EnvSearchProvider)
	setString(&c.Search.Tavily.APIKey, EnvTavilyAPIKey)
	setString(&c.Search.SearXNG.BaseURL, EnvSearXNGBaseURL)

	setString(&c.Email.AppPassword, EnvAppPassword)
	setString(&c.Email.Sender, EnvEmailSender)
	setString(&c.Email.Receiver, EnvEmailReceiver)

	setString(&c.Log.Level, EnvLogLevel)
	setString(&c.Log.File, EnvLogFile)
}

func setString(dst *string, key string) {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		*dst = val
	}
}

// Validate 检查四项必填配置，缺失项一次性全部报告
func (c Config) Validate() error {
	var missing []string
	if c.LLM.APIKey == "" {
		missing = append(missing, EnvGeminiAPIKey)
	}
	if c.Email.AppPassword == "" {
		missing = append(missing, EnvAppPassword)
	}
	if c.Email.Sender == "" {
		missing = append(missing, EnvEmailSender)
	}
	if strings.TrimSpace(c.Email.Receiver) == "" {
		missing = append(missing, EnvEmailReceiver)
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}
	return nil
}
