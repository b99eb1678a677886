package main

import (
	"fmt"
	"image"
	"os"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/spf13/cobra"

	"github.com/davidhanko/printcrop/pkg/geometry"
)

var fitCmd = &cobra.Command{
	Use:   "fit [image]",
	Short: "Print the output resolution an image yields for each print size",
	Long: `Fit reads only the image header and prints, for one or more print
sizes, the exact output resolution a crop would produce: the largest
rectangle of the size's aspect ratio that fits inside the image.`,
	Args: cobra.ExactArgs(1),
	RunE: runFit,
}

func init() {
	rootCmd.AddCommand(fitCmd)

	fitCmd.Flags().StringSlice("size", []string{"9x6"}, "Print sizes, e.g. --size 9x6,13x18")
}

func runFit(cmd *cobra.Command, args []string) error {
	sizes, err := cmd.Flags().GetStringSlice("size")
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return fmt.Errorf("failed to read image header: %w", err)
	}
	fmt.Printf("Image: %dx%d\n", cfg.Width, cfg.Height)

	for _, tag := range sizes {
		size, err := geometry.ParseSize(tag)
		if err != nil {
			return err
		}
		width, height := geometry.LargestFit(size.Ratio(), cfg.Width, cfg.Height)
		fmt.Printf("  %-7s %dx%d\n", tag, width, height)
	}
	return nil
}
