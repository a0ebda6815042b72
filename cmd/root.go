package cmd

import (
	"fmt"
	"os"

	"github.com/koki-develop/imoji/internal/config"
	"github.com/koki-develop/imoji/internal/emoji"
	"github.com/koki-develop/imoji/internal/imageio"
	"github.com/koki-develop/imoji/internal/logger"
	"github.com/koki-develop/imoji/internal/resize"
	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCmd(termSize config.TermSize) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "imoji -i FILE [MAX_WIDTH] [MAX_HEIGHT]",
		Short:         "Convert an image into a grid of emoji",
		Version:       version,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags(), args, termSize)
			if err != nil {
				return err
			}

			img, err := imageio.Load(cfg.Input, cmd.InOrStdin())
			if err != nil {
				return err
			}

			if cfg.Verbose {
				sz := img.Bounds()
				w, h := resize.NewResizer().FitSize(sz, cfg.MaxWidth, cfg.MaxHeight)
				logger.Info("decoded %dx%d, rendering %dx%d", sz.Dx(), sz.Dy(), w, h)
			}

			grid := emoji.ImageToEmoji(img, &emoji.Option{
				MaxWidth:  cfg.MaxWidth,
				MaxHeight: cfg.MaxHeight,
			})
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), grid); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		},
	}
	config.RegisterFlags(cmd.Flags())

	return cmd
}

var rootCmd = newRootCmd(config.TerminalSize)

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}
