package config

import "github.com/livp123/logsift/internal/runtime"

// DefaultConfigPath is used when no --config flag is given.
// DefaultConfigPath 在未提供 --config 标志时使用。
const DefaultConfigPath = "/etc/logsift/config.yaml"

// GetConfigPath returns the CLI-provided config path, or the default.
// GetConfigPath 返回 CLI 提供的配置路径，否则返回默认路径。
func GetConfigPath() string {
	if runtime.ConfigPath != "" {
		return runtime.ConfigPath
	}
	return DefaultConfigPath
}
