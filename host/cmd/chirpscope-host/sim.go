package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"chirpscope/host/config"
	"chirpscope/host/sim"
)

var (
	simHeadless  bool
	simSilent    bool
	simHeartbeat bool
)

// simCmd represents the sim command
var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the instrument on this machine",
	Long: `Run the firmware's tasks against simulated hardware: the two
voices play on the sound card, a signal generator feeds the analyzer,
and the spectrum draws in a window. Handshake reports print to stdout
in the same format the board uses, so they pipe into the monitor
tooling unchanged.

Examples:
  chirpscope-host sim
  chirpscope-host sim --shape chirp --volume 0.3
  chirpscope-host sim --shape sine --frequency 1200 --headless
  chirpscope-host sim --silent --headless`,
	RunE: runSim,
}

func init() {
	rootCmd.AddCommand(simCmd)

	simCmd.Flags().Float64("volume", 0.5, "playback volume, 0 to 1")
	simCmd.Flags().String("shape", "sine", "generator shape (sine, chirp, noise)")
	simCmd.Flags().Float64("frequency", 488.28125, "generator frequency in Hz")
	simCmd.Flags().Float64("amplitude", 0.8, "generator swing, 0 to 1 of full scale")
	simCmd.Flags().Int("scale", 1, "window size multiplier")
	simCmd.Flags().BoolVar(&simHeadless, "headless", false, "run without the spectrum window")
	simCmd.Flags().BoolVar(&simSilent, "silent", false, "run without sound card output")
	simCmd.Flags().BoolVar(&simHeartbeat, "heartbeat", false, "print a dot to stderr at the LED blink cadence")

	viper.BindPFlag("audio.volume", simCmd.Flags().Lookup("volume"))
	viper.BindPFlag("signal.shape", simCmd.Flags().Lookup("shape"))
	viper.BindPFlag("signal.frequency", simCmd.Flags().Lookup("frequency"))
	viper.BindPFlag("signal.amplitude", simCmd.Flags().Lookup("amplitude"))
	viper.BindPFlag("display.scale", simCmd.Flags().Lookup("scale"))
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	opts := sim.Options{
		Shape:     cfg.Signal.Shape,
		Frequency: cfg.Signal.Frequency,
		Amplitude: cfg.Signal.Amplitude,
		Display:   cfg.Display.Enabled && !simHeadless,
		Scale:     cfg.Display.Scale,
		Heartbeat: simHeartbeat,
	}
	if cfg.Audio.Enabled && !simSilent {
		opts.Volume = cfg.Audio.Volume
	}

	rig, err := sim.NewRig(opts)
	if err != nil {
		return err
	}
	return rig.Run()
}
