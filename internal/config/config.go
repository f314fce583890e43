package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config 是 kokoro-g2p 的顶层配置结构。
type Config struct {
	G2P       G2PConfig       `yaml:"g2p"`
	Segmenter SegmenterConfig `yaml:"segmenter"`
	English   EnglishConfig   `yaml:"english"`
	Lexicon   LexiconConfig   `yaml:"lexicon"`
	Log       LogConfig       `yaml:"log"`
}

// G2PConfig 音素转换配置。
type G2PConfig struct {
	// Mode 为 current（注音符号，v1.1 模型）或 legacy（IPA 声调箭头，v1.0 模型）。
	Mode string `yaml:"mode"`
	// Erhua 是否处理儿化。指针区分“未设置”和“显式关闭”。
	Erhua *bool `yaml:"erhua"`
	// ChunkSize 长文本按句切分时每段的最大字符数。
	ChunkSize int `yaml:"chunk_size"`
}

// ErhuaEnabled 返回儿化开关，未设置时为 true。
func (c G2PConfig) ErhuaEnabled() bool {
	return c.Erhua == nil || *c.Erhua
}

// SegmenterConfig 分词器配置。
type SegmenterConfig struct {
	// DictPath 为空时使用 gse 内置词典。
	DictPath string `yaml:"dict_path"`
}

// EnglishConfig 英文音素化配置。
type EnglishConfig struct {
	// Backend 为 dict（CMU 词典）或 goruut。
	Backend string `yaml:"backend"`
	// DictPath 额外加载的 CMU 格式词典，为空时只用内置词典。
	DictPath string `yaml:"dict_path"`
	// Selection 为 first 或 random，决定多读音单词取哪一个。
	Selection string `yaml:"selection"`
	// Seed 仅在 selection=random 时生效，0 表示按时间取种子。
	Seed int64 `yaml:"seed"`
}

// LexiconConfig 用户词库配置。
type LexiconConfig struct {
	// Path 为 SQLite 文件路径，为空则禁用用户词库。
	Path string `yaml:"path"`
}

// LogConfig 日志配置。
type LogConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	File       string `yaml:"file"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
}

// Load 读取 YAML 配置文件并返回 Config。
// 支持 ${VAR_NAME} 形式的环境变量展开。
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件 %s 失败: %w", path, err)
	}

	expanded := os.Expand(string(data), func(key string) string {
		return os.Getenv(key)
	})

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件 %s 失败: %w", path, err)
	}

	setDefaults(cfg)
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("配置文件 %s 无效: %w", path, err)
	}
	return cfg, nil
}

// Default 返回全部使用默认值的配置，供没有配置文件时使用。
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// setDefaults 为未设置的配置项填充默认值。
func setDefaults(cfg *Config) {
	cfg.G2P.Mode = strings.ToLower(strings.TrimSpace(cfg.G2P.Mode))
	if cfg.G2P.Mode == "" {
		cfg.G2P.Mode = "current"
	}
	if cfg.G2P.ChunkSize == 0 {
		cfg.G2P.ChunkSize = 100
	}
	if cfg.English.Backend == "" {
		cfg.English.Backend = "dict"
	}
	if cfg.English.Selection == "" {
		cfg.English.Selection = "first"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}

	cfg.Segmenter.DictPath = expandHome(cfg.Segmenter.DictPath)
	cfg.English.DictPath = expandHome(cfg.English.DictPath)
	cfg.Lexicon.Path = expandHome(cfg.Lexicon.Path)
	cfg.Log.File = expandHome(cfg.Log.File)
}

// validate 检查枚举类配置项。
func validate(cfg *Config) error {
	switch cfg.G2P.Mode {
	case "current", "legacy":
	default:
		return fmt.Errorf("未知的 g2p.mode: %s", cfg.G2P.Mode)
	}
	switch cfg.English.Backend {
	case "dict", "goruut":
	default:
		return fmt.Errorf("未知的 english.backend: %s", cfg.English.Backend)
	}
	switch cfg.English.Selection {
	case "first", "random":
	default:
		return fmt.Errorf("未知的 english.selection: %s", cfg.English.Selection)
	}
	return nil
}

// expandHome 展开路径开头的 ~/。
func expandHome(path string) string {
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	// Go 不会自动展开 ~，需要手动替换为用户主目录
	home, _ := os.UserHomeDir()
	if home == "" {
		return path
	}
	return home + path[1:]
}
