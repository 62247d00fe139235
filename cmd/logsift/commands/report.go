package commands

import (
	"os"

	"github.com/spf13/cobra"
)

var reportOpts ReportOptions

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Count per-address log entries in an address range and time window",
	Long: `Count per-address log entries in an address range and time window.

The input log must contain one entry per line in the form

    <address>: yyyy-MM-dd HH:mm:ss

(or one JSON object per line with --format json). Malformed lines are
skipped. The report is written as one "<address>:<count>" line per selected
address, sorted by address.

Note: --addr-mask is the inclusive upper bound of the address range, compared
as a plain string. With the default empty mask every non-empty address is
filtered out.`,
	Example: `  logsift report --input access.log --output counts.txt \
    --addr-start 10.0.0.1 --addr-mask 10.0.0.5 \
    --time-start 01.01.2024 --time-end 02.01.2024`,
	Run: func(cmd *cobra.Command, args []string) {
		if RunReport == nil {
			cmd.PrintErrln("❌ RunReport function not initialized")
			os.Exit(1)
		}
		if err := RunReport(reportOpts); err != nil {
			cmd.PrintErrln("❌", err)
			os.Exit(1)
		}
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportOpts.Input, "input", "i", "", "Path to the input access log (required)")
	reportCmd.Flags().StringVarP(&reportOpts.Output, "output", "o", "", "Path to the output report file (required)")
	reportCmd.Flags().StringVar(&reportOpts.AddressStart, "addr-start", "", "Inclusive lower bound for address selection")
	reportCmd.Flags().StringVar(&reportOpts.AddressMask, "addr-mask", "", "Inclusive upper bound for address selection (plain string bound, not a bitmask)")
	reportCmd.Flags().StringVar(&reportOpts.TimeStart, "time-start", "", "Inclusive lower time bound, dd.MM.yyyy (required)")
	reportCmd.Flags().StringVar(&reportOpts.TimeEnd, "time-end", "", "Inclusive upper time bound, dd.MM.yyyy (required)")
	reportCmd.Flags().StringVar(&reportOpts.Filter, "filter", "", `Optional record predicate, e.g. 'Contains(Address, "10.0")'`)
	reportCmd.Flags().StringVar(&reportOpts.Format, "format", "", "Input line format: plain or json (default from config)")
	reportCmd.Flags().IntVar(&reportOpts.Workers, "workers", 0, "Aggregation workers, <=1 for sequential (default from config)")

	_ = reportCmd.MarkFlagRequired("input")
	_ = reportCmd.MarkFlagRequired("output")
	_ = reportCmd.MarkFlagRequired("time-start")
	_ = reportCmd.MarkFlagRequired("time-end")
}
