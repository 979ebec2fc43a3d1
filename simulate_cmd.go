package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/automoto/barr/components"
	"github.com/automoto/barr/core"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagScript string
	flagFrames int
	flagQuiet  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the game headless with scripted input",
	Long: `Steps the level director at the configured tick rate without a window,
feeding it a scripted input, then prints where play ended up.

A script is a comma separated list of KEYS:FRAMES steps. KEYS combines
L (left), R (right) and J (jump); "-" holds nothing. Frames past the
end of the script hold nothing.

Examples:
  barr simulate --script "R:480"
  barr simulate --level 3 --script "R:40, RJ:20, R:120" --frames 600`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagScript, "script", "-:1", "Scripted input")
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 0, "Frames to run (default: script length)")
	simulateCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Suppress level load logging")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	conf, catalog, err := setup()
	if err != nil {
		return err
	}

	script, err := core.ParseScript(flagScript)
	if err != nil {
		return err
	}

	logger := log.Default()
	if flagQuiet {
		logger = log.New(io.Discard)
	}
	director, err := core.NewDirectorFromCatalog(catalog, conf,
		core.WithLogger(logger),
		core.WithStartLevel(flagLevel),
	)
	if err != nil {
		return err
	}

	frames := flagFrames
	if frames <= 0 {
		frames = script.Len()
	}
	stats := core.NewLoop(director, script, conf.TPS).RunFrames(frames)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "frames:   %d\n", stats.Frames)
	fmt.Fprintf(out, "level:    %d (%s)\n", director.Index(), director.Level().Name)
	fmt.Fprintf(out, "advances: %d\n", stats.Advances)
	fmt.Fprintf(out, "restarts: %d\n", stats.Restarts)

	events := make([]components.Event, 0, len(stats.Events))
	for ev := range stats.Events {
		events = append(events, ev)
	}
	sort.Slice(events, func(i, j int) bool { return events[i] < events[j] })
	for _, ev := range events {
		fmt.Fprintf(out, "  %-9s %d\n", ev.String()+":", stats.Events[ev])
	}
	return nil
}
