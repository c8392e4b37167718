package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chirpscope/host/config"
	"chirpscope/host/monitor"
	"chirpscope/host/serial"
)

// monitorCmd represents the monitor command
var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Follow handshake reports from an attached board",
	Long: `Open the board's USB console and follow its handshake reports.

Parsed reports collapse into a live status line on a terminal; on a
pipe every report stays its own line. Console output that is not a
report passes through untouched.

Examples:
  chirpscope-host monitor
  chirpscope-host monitor --device /dev/ttyACM1
  chirpscope-host monitor | tee session.log`,
	RunE: runMonitor,
}

func init() {
	rootCmd.AddCommand(monitorCmd)
}

func runMonitor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	port, err := serial.Open(&serial.Config{
		Device:      cfg.Serial.Device,
		Baud:        cfg.Serial.Baud,
		ReadTimeout: cfg.Serial.ReadTimeout,
	})
	if err != nil {
		return err
	}
	defer port.Close()

	if verbose {
		fmt.Fprintf(os.Stderr, "listening on %s\n", cfg.Serial.Device)
	}

	view := monitor.NewView(os.Stdout)
	m := &monitor.Monitor{
		OnReport: view.Show,
		OnRaw:    view.ShowRaw,
	}
	return m.Run(port)
}
