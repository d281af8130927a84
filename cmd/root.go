package cmd

import (
	"os"

	"github.com/faiface/pixel/pixelgl"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jaekwonkang/gomines/director/random"
	"github.com/jaekwonkang/gomines/game"
	"github.com/jaekwonkang/gomines/ui"
)

var (
	gameConfig  game.Config
	configPath  string
	useDirector bool
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "gomines",
	Short: "Play manual or computer-driven Minesweeper",
	Long: `gomines is a Minesweeper game which supports human- or
computer-driven playing.

Run with no arguments to play a 16x16 board with 40 mines
	gomines

Use the director flag to make the computer play for you
	gomines --director
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}

		// Reject bad board parameters before a window ever opens.
		if _, err := game.NewBoard(gameConfig); err != nil {
			return err
		}

		uiConfig := ui.DefaultConfig()
		if configPath != "" {
			var err error
			if uiConfig, err = ui.LoadConfig(configPath); err != nil {
				return err
			}
			logrus.WithField("path", configPath).Info("loaded presentation config")
		}

		options := ui.Options{
			Config: uiConfig,
			Game:   gameConfig,
		}
		if useDirector {
			options.Director = &random.Director{}
		}

		logrus.WithFields(logrus.Fields{
			"cols":     gameConfig.Cols,
			"rows":     gameConfig.Rows,
			"mines":    gameConfig.Mines,
			"seed":     gameConfig.Seed,
			"director": useDirector,
		}).Info("starting game")

		pixelgl.Run(func() {
			if err := ui.Run(options); err != nil {
				logrus.Fatal(err)
			}
		})
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().IntVarP(&gameConfig.Cols, "cols", "c", 16, "Width of the board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.Rows, "rows", "r", 16, "Height of the board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.Mines, "mines", "m", 40, "Number of mines to place in the board")
	rootCmd.Flags().Int64Var(&gameConfig.Seed, "seed", 0, "Mine placement seed (0 seeds from the clock)")
	rootCmd.Flags().BoolVarP(&useDirector, "director", "d", false, "Make the computer play")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML presentation config")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
