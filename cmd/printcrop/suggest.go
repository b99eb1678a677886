package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davidhanko/printcrop/pkg/geometry"
	"github.com/davidhanko/printcrop/pkg/processing"
	"github.com/davidhanko/printcrop/pkg/suggest"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [image]",
	Short: "Print the suggested crop box for an image and size",
	Long: `Suggest runs the saliency analysis on one image and prints the crop
box it would place, in source pixel coordinates.`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)

	suggestCmd.Flags().String("size", "9x6", "Print size, e.g. 9x6")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	size, err := geometry.ParseSize(mustGetString(cmd, "size"))
	if err != nil {
		return err
	}

	img, err := processing.New().Load(args[0])
	if err != nil {
		return err
	}

	bounds := img.Bounds()
	targetWidth, targetHeight := geometry.LargestFit(size.Ratio(), bounds.Dx(), bounds.Dy())

	suggester := suggest.NewWithCap(suggest.NewSmartcropEngine(), cfg.AnalysisCap)
	box, err := suggester.Suggest(img, targetWidth, targetHeight)
	if err != nil {
		return err
	}

	fmt.Printf("Image:  %dx%d\n", bounds.Dx(), bounds.Dy())
	fmt.Printf("Output: %dx%d\n", targetWidth, targetHeight)
	fmt.Printf("Crop:   %d,%d %dx%d\n", box.X, box.Y, box.Width, box.Height)
	return nil
}
