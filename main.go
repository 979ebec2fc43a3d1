// barr is a tile platformer: carry the barr from its pickup to the goal,
// avoid the patrolling enemies, and the next level loads.
//
// Usage:
//
//	barr                    - Open the title screen and play
//	barr levels             - Validate and list the level catalog
//	barr simulate           - Play scripted input headless and print stats
//
// Global flags:
//
//	--config <path>  - Config YAML (default search: ~/.barr, ./configs, embedded)
//	--level <n>      - First level to play (0-based)
//	--debug          - Debug overlay and debug logging
package main

import (
	"fmt"
	"os"

	"github.com/automoto/barr/config"
	"github.com/automoto/barr/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagLevel  int
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("barr failed", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "barr",
	Short: "Barr - carry the barr to the goal",
	Long: `Barr is a small tile platformer. Pick up the barr, carry it to the goal
and the next level loads. Touching an enemy restarts the level.

Controls:
  A/D or arrows   - Move
  W/Space/Up      - Jump
  P/Esc           - Pause
  R               - Restart level
  M               - Mute
  F1              - Debug overlay
  F11             - Toggle fullscreen`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagLevel, "level", 0, "First level to play (0-based, wraps)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable the debug overlay and debug logging")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simulateCmd)
}

// setup loads the config and level catalog shared by every command.
func setup() (*config.Config, *leveldata.Catalog, error) {
	conf, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	if flagDebug {
		conf.Debug.Overlay = true
		conf.Debug.LogLevel = "debug"
	}
	config.C = conf

	if lvl, err := log.ParseLevel(conf.Debug.LogLevel); err == nil {
		log.SetLevel(lvl)
	} else {
		log.Warn("unknown log level, keeping info", "level", conf.Debug.LogLevel)
	}

	catalog, err := loadCatalog(conf)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("catalog loaded", "levels", catalog.Len(), "dir", conf.Level.Dir)
	return conf, catalog, nil
}

func loadCatalog(conf *config.Config) (*leveldata.Catalog, error) {
	if conf.Level.Dir == "" {
		return leveldata.DefaultCatalog()
	}
	catalog, err := leveldata.LoadCatalog(os.DirFS(conf.Level.Dir), ".")
	if err != nil {
		return nil, fmt.Errorf("level dir %s: %w", conf.Level.Dir, err)
	}
	return catalog, nil
}
