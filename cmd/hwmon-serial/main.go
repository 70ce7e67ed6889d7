// cmd/hwmon-serial/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// Command flags
var (
	configPath    string
	portFlag      string
	indexFlag     int
	intervalFlag  time.Duration
	listPortsFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "hwmon-serial",
	Short: "Stream host telemetry frames to a serial display",
	Long: `Sample CPU, RAM, GPU, disk and network statistics and send them as
16-byte frames to a microcontroller display over a serial port.

The port is auto-detected by USB product name; when the match is ambiguous
an interactive prompt asks which port to use.

Examples:
  hwmon-serial
  hwmon-serial --port /dev/ttyUSB0
  hwmon-serial --index 2 --interval 250ms
  hwmon-serial --config hwmon.yaml
  hwmon-serial --list-ports`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), options{
			configPath:  configPath,
			port:        portFlag,
			index:       indexFlag,
			interval:    intervalFlag,
			intervalSet: cmd.Flags().Changed("interval"),
			listPorts:   listPortsFlag,
		})
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "optional YAML config file")
	f.StringVarP(&portFlag, "port", "p", "", "serial device to use (skips detection)")
	f.IntVarP(&indexFlag, "index", "i", 0, "1-based index into the detected port list")
	f.DurationVar(&intervalFlag, "interval", 0, "frame period (default 100ms)")
	f.BoolVarP(&listPortsFlag, "list-ports", "l", false, "list serial ports and exit")

	rootCmd.MarkFlagsMutuallyExclusive("port", "index")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
