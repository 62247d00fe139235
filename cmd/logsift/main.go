package main

import (
	"context"

	"github.com/livp123/logsift/cmd/logsift/commands"
	"github.com/livp123/logsift/internal/app"
	"github.com/livp123/logsift/internal/utils/logger"
)

func main() {
	defer func() { _ = logger.Sync() }()

	// Bind command implementations
	// 绑定命令实现
	commands.RunReport = func(opts commands.ReportOptions) error {
		return app.RunReport(context.Background(), app.ReportOptions{
			Input:        opts.Input,
			Output:       opts.Output,
			AddressStart: opts.AddressStart,
			AddressMask:  opts.AddressMask,
			TimeStart:    opts.TimeStart,
			TimeEnd:      opts.TimeEnd,
			Filter:       opts.Filter,
			Format:       opts.Format,
			Workers:      opts.Workers,
		})
	}
	commands.InitConfiguration = func() error {
		return app.InitConfiguration(context.Background())
	}
	commands.TestConfiguration = func() error {
		return app.TestConfiguration(context.Background())
	}

	commands.Execute()
}
