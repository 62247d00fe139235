package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/livp123/logsift/internal/config"
	"github.com/livp123/logsift/internal/runtime"
	"github.com/livp123/logsift/internal/utils/logger"
)

var RootCmd = &cobra.Command{
	Use:   "logsift",
	Short: "A batch access-log range and count reporter",
	// Short: 批处理访问日志范围统计工具
	Long: `logsift ingests a line-oriented access log, restricts the entries to an
address range and a time window, and reports per-address occurrence counts.
logsift 摄取按行组织的访问日志，将条目限制在地址范围和时间窗口内，
并报告每个地址的出现次数。`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load configuration to get logging settings
		// 加载配置以获取日志设置
		cfg, err := config.Load(config.GetConfigPath())
		if err != nil {
			// If config fails to load, use default logging config (console only)
			// 如果加载配置失败，使用默认日志配置（仅控制台）
			logger.Init(logger.LoggingConfig{
				Enabled: false,
				Level:   "info",
			})
		} else {
			logger.Init(cfg.Logging)
		}

		// Inject logger into context
		// 将 Logger 注入 Context
		ctx := logger.WithContext(cmd.Context(), logger.Get(nil))
		cmd.SetContext(ctx)
	},
}

func init() {
	// Config file path
	// 配置文件路径
	RootCmd.PersistentFlags().StringVarP(&runtime.ConfigPath, "config", "c", "",
		fmt.Sprintf("Path to configuration file (default: %s)", config.DefaultConfigPath))

	RootCmd.AddCommand(reportCmd)  // report - 生成报表
	RootCmd.AddCommand(configCmd)  // config - 配置管理（init/test）
	RootCmd.AddCommand(versionCmd) // version - 版本信息

	RootCmd.CompletionOptions.DisableDescriptions = true
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
