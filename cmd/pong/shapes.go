package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/console-pong/internal/shape"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Show the ball and paddle images",
	Long: `Load the ball and paddle images the game would use and print them.

Images come from --shapes (or shapes_dir in the config) when set,
otherwise from the built-in set. A missing or ragged image is an error.

Examples:
  pong shapes
  pong shapes --shapes ./art`,
	RunE: runShapes,
}

func runShapes(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	loader := shape.NewLoader(cfg.ShapesDir)
	fmt.Printf("Source: %s\n", loader.Source())

	for _, name := range []string{shape.BallName, shape.PlankName} {
		s, err := loader.Load(name)
		if err != nil {
			return err
		}

		w, h := s.Size()
		fmt.Println()
		fmt.Printf("%s  %dx%d, %d solid points\n", name, w, h, s.SolidCount())
		fmt.Println(s.String())
	}
	return nil
}
