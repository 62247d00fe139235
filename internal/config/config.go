package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/livp123/logsift/internal/utils/logger"
	sifterrors "github.com/livp123/logsift/pkg/errors"
)

// DefaultConfigTemplate defines the default configuration file structure with bilingual comments.
// This template is used to initialize new config files.
const DefaultConfigTemplate = `# LogSift Configuration File / LogSift 配置文件

# Logging Configuration / 日志配置
logging:
  # Enabled: write diagnostics to a rotated log file instead of stderr.
  # 是否将诊断信息写入轮转日志文件而不是 stderr。
  enabled: false
  level: "info"
  path: ""
  max_size: 50
  max_backups: 3
  max_age: 7
  compress: false

# Metrics Configuration / 指标配置
metrics:
  # Enabled: expose Prometheus metrics on the listen address for the
  # duration of a run. Off by default for a batch tool.
  # 在运行期间通过监听地址暴露 Prometheus 指标。批处理工具默认关闭。
  enabled: false
  listen: ":9101"

# Report Configuration / 报表配置
report:
  # Workers: number of goroutines used for the aggregation phase.
  # 1 means sequential aggregation.
  # 聚合阶段使用的协程数量。1 表示串行聚合。
  workers: 1

  # Format: input line format, "plain" (addr: timestamp) or "json".
  # 输入行格式，"plain"（addr: timestamp）或 "json"。
  format: "plain"
`

// MetricsConfig controls the optional Prometheus endpoint.
// MetricsConfig 控制可选的 Prometheus 端点。
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Listen  string `yaml:"listen"`
}

// ReportConfig holds defaults for report runs.
// ReportConfig 保存报表运行的默认值。
type ReportConfig struct {
	Workers int    `yaml:"workers"`
	Format  string `yaml:"format"`
}

// GlobalConfig is the root of the YAML configuration file.
// GlobalConfig 是 YAML 配置文件的根结构。
type GlobalConfig struct {
	Logging logger.LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig        `yaml:"metrics"`
	Report  ReportConfig         `yaml:"report"`
}

// Default returns the configuration parsed from DefaultConfigTemplate.
// Default 返回从 DefaultConfigTemplate 解析出的配置。
func Default() *GlobalConfig {
	cfg := &GlobalConfig{}
	// The template is a compile-time constant; it always parses.
	_ = yaml.Unmarshal([]byte(DefaultConfigTemplate), cfg)
	return cfg
}

// Load reads the configuration file at path, layered over defaults.
// A missing file is not an error: defaults are returned.
// Load 读取指定路径的配置文件，叠加在默认值之上。文件缺失不视为错误，返回默认值。
func Load(path string) (*GlobalConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	safePath := filepath.Clean(path)   // Sanitize path to prevent directory traversal
	data, err := os.ReadFile(safePath) // #nosec G304 // path is sanitized with filepath.Clean
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, sifterrors.NewConfigError("file", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path.
// Save 将配置写入指定路径。
func Save(path string, cfg *GlobalConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Clean(path), data, 0600)
}

// InitFile writes the default config template to path unless it already exists.
// InitFile 将默认配置模板写入指定路径（若文件已存在则跳过）。
func InitFile(path string) error {
	safePath := filepath.Clean(path)
	if _, err := os.Stat(safePath); err == nil {
		return nil
	}
	if dir := filepath.Dir(safePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(safePath, []byte(DefaultConfigTemplate), 0600)
}

// Validate checks the configuration for invalid values.
// Validate 检查配置中的非法值。
func (c *GlobalConfig) Validate() error {
	if c.Report.Workers < 0 {
		return sifterrors.NewConfigError("report.workers", c.Report.Workers)
	}
	switch c.Report.Format {
	case "", "plain", "json":
	default:
		return sifterrors.NewConfigError("report.format", c.Report.Format)
	}
	if c.Metrics.Enabled && c.Metrics.Listen == "" {
		return sifterrors.NewConfigError("metrics.listen", c.Metrics.Listen)
	}
	return nil
}
