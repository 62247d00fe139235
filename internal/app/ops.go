package app

import (
	"context"
	"fmt"

	"github.com/livp123/logsift/internal/config"
	"github.com/livp123/logsift/internal/engine"
	"github.com/livp123/logsift/internal/metrics"
	"github.com/livp123/logsift/internal/report"
	"github.com/livp123/logsift/internal/utils/fileutil"
	"github.com/livp123/logsift/internal/utils/logger"
	sifterrors "github.com/livp123/logsift/pkg/errors"
)

// ReportOptions carries the boundary-level option values for one report run.
// Zero string values mean "not set"; defaults are resolved against the
// loaded configuration before the core runs.
type ReportOptions struct {
	Input        string
	Output       string
	AddressStart string
	AddressMask  string
	TimeStart    string
	TimeEnd      string
	Filter       string
	Format       string
	Workers      int
}

/**
 * RunReport runs the full pipeline: validate the boundary inputs, stream and
 * parse the input log, aggregate per-address counts and write the report.
 * RunReport 运行完整流水线：校验边界输入、流式解析输入日志、按地址聚合计数并写出报表。
 */
func RunReport(ctx context.Context, opts ReportOptions) error {
	log := logger.Get(ctx)

	cfg, err := config.Load(config.GetConfigPath())
	if err != nil {
		return err
	}

	// Setup failures are detected here, before any processing begins.
	// 启动前在此检测所有设置类错误。
	if !fileutil.FileExists(opts.Input) {
		return sifterrors.NewInputError(opts.Input, fmt.Errorf("stat failed"))
	}
	if opts.Output == "" {
		return sifterrors.ErrInvalidFilePath
	}

	criteria, err := engine.NewCriteria(opts.AddressStart, opts.AddressMask, opts.TimeStart, opts.TimeEnd)
	if err != nil {
		return err
	}

	filter, err := engine.CompileFilter(opts.Filter)
	if err != nil {
		return err
	}

	format := opts.Format
	if format == "" {
		format = cfg.Report.Format
	}
	var parser engine.LineParser
	switch format {
	case "", "plain":
		parser = engine.NewParser()
	case "json":
		parser = engine.NewJSONParser()
	default:
		return sifterrors.NewFormatError(format)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = cfg.Report.Workers
	}

	if cfg.Metrics.Enabled {
		metrics.Serve(cfg.Metrics.Listen)
	}

	pipeline := engine.NewPipeline(parser, filter, workers)
	counts, err := pipeline.Run(opts.Input, criteria)
	if err != nil {
		return err
	}

	if err := report.WriteFile(opts.Output, counts); err != nil {
		return fmt.Errorf("%w: %s: %v", sifterrors.ErrOutputNotWritable, opts.Output, err)
	}

	log.Infof("✅ Report written: %d addresses -> %s", len(counts), opts.Output)
	return nil
}

/**
 * InitConfiguration writes the default configuration template.
 * InitConfiguration 写入默认配置模板。
 */
func InitConfiguration(ctx context.Context) error {
	log := logger.Get(ctx)
	path := config.GetConfigPath()
	if err := config.InitFile(path); err != nil {
		return err
	}
	log.Infof("📝 Configuration initialized at %s", path)
	return nil
}

/**
 * TestConfiguration loads and validates the configuration file.
 * TestConfiguration 加载并校验配置文件。
 */
func TestConfiguration(ctx context.Context) error {
	log := logger.Get(ctx)
	path := config.GetConfigPath()
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log.Infof("✅ Configuration %s is valid", path)
	return nil
}
