// phox is a small platformer prototype.
//
// Usage:
//
//	phox                 - Play, resuming the last level
//	phox --level tower   - Play a specific level
//	phox levels          - List the embedded levels
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/phox/common"
	"github.com/milk9111/phox/levels"
	"github.com/milk9111/phox/save"
	"github.com/spf13/cobra"
)

var (
	flagLevel       string
	flagDebug       bool
	flagWatch       bool
	flagBaseMonitor bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "phox",
	Short: "Platformer prototype",
	Long: `phox runs the platformer. Move with A/D, jump with Space (twice in
the air), hold Shift to sprint, Escape pauses.

In debug mode [ and ] cycle levels and F3 toggles collider outlines.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(flagDebug)
	},
	RunE:         runGame,
	SilenceUsage: true,
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List embedded levels",
	RunE:  runLevels,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging and overlay")
	rootCmd.Flags().StringVar(&flagLevel, "level", "", "Level name in levels/ (.json optional)")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Hot reload prefabs/*.yaml from disk")
	rootCmd.Flags().BoolVarP(&flagBaseMonitor, "monitor", "m", false, "Use the first monitor instead of the primary one")

	rootCmd.AddCommand(levelsCmd)
}

func setupLogging(debug bool) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "phox",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)
}

func openStore() *save.Store {
	store, err := save.Open(save.AppName)
	if err != nil {
		log.Warn("progress will not be saved", "err", err)
		return nil
	}
	return store
}

func runGame(cmd *cobra.Command, args []string) error {
	if flagBaseMonitor {
		if monitors := ebiten.AppendMonitors(nil); len(monitors) > 0 {
			ebiten.SetMonitor(monitors[0])
		}
	}

	ebiten.SetTPS(common.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth*2, common.BaseHeight*2)
	ebiten.SetWindowTitle("phox")

	game, err := NewGame(Options{
		Level: flagLevel,
		Debug: flagDebug,
		Watch: flagWatch,
		Store: openStore(),
	})
	if err != nil {
		return err
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func runLevels(cmd *cobra.Command, args []string) error {
	progress, err := openStore().Load()
	if err != nil {
		log.Warn("could not read progress", "err", err)
	}

	out := cmd.OutOrStdout()
	for _, name := range levels.Names() {
		lvl, err := levels.LoadLevelFromFS(name)
		if err != nil {
			return err
		}
		marker := " "
		if name == progress.LastLevel {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-10s %4dx%-4d at (%d, %d)  plays: %d\n",
			marker, name, lvl.PixelWidth(), lvl.PixelHeight(), lvl.WorldX, lvl.WorldY, progress.Plays[name])
	}
	return nil
}
