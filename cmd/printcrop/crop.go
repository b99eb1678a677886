package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/davidhanko/printcrop/internal/utils"
	"github.com/davidhanko/printcrop/pkg/batch"
	"github.com/davidhanko/printcrop/pkg/geometry"
	"github.com/davidhanko/printcrop/pkg/processing"
	"github.com/davidhanko/printcrop/pkg/project"
	"github.com/davidhanko/printcrop/pkg/suggest"
)

var cropCmd = &cobra.Command{
	Use:   "crop",
	Short: "Crop tagged images to their print sizes",
	Long: `Crop runs the batch pass: every image is cropped to its size tag's
aspect ratio and resized to the largest resolution the source supports.

With --project, the fully tagged images of a saved project are cropped and
the project file is updated. With --dir and --size, every supported image in
a directory is cropped to one size using automatic crop placement.`,
	RunE: runCrop,
}

func init() {
	rootCmd.AddCommand(cropCmd)

	cropCmd.Flags().String("project", "", "Project file with tagged images")
	cropCmd.Flags().String("dir", "", "Directory of images to crop (requires --size)")
	cropCmd.Flags().Bool("recursive", false, "Include images in subdirectories of --dir")
	cropCmd.Flags().String("size", "", "Print size for --dir mode, e.g. 9x6")
	cropCmd.Flags().String("album", "untitled", "Album name for --dir mode outputs")
	cropCmd.Flags().String("out", "output", "Output directory for --dir mode")
	cropCmd.Flags().Bool("no-suggest", false, "Center unboxed crops instead of using saliency suggestions")
	cropCmd.Flags().Bool("recrop", false, "Include images already marked as cropped")
}

func runCrop(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	projectPath := mustGetString(cmd, "project")
	dir := mustGetString(cmd, "dir")
	noSuggest := mustGetBool(cmd, "no-suggest")
	recrop := mustGetBool(cmd, "recrop")

	var proj *project.Project
	switch {
	case projectPath != "":
		proj, err = project.Load(projectPath)
		if err != nil {
			return err
		}
	case dir != "":
		size := mustGetString(cmd, "size")
		if size == "" {
			return fmt.Errorf("--dir requires --size")
		}
		if _, err := geometry.ParseSize(size); err != nil {
			return err
		}
		proj = project.New(filepath.Base(dir), dir, mustGetString(cmd, "out"))
		if mustGetBool(cmd, "recursive") {
			paths, err := utils.ListImageFiles(dir, cfg.SupportedFormats)
			if err != nil {
				return err
			}
			for _, path := range paths {
				proj.Images = append(proj.Images, &project.ImageItem{FilePath: path})
			}
		} else if err := proj.LoadImages(cfg.SupportedFormats); err != nil {
			return err
		}
		album := mustGetString(cmd, "album")
		for _, img := range proj.Images {
			img.SetAlbumTag(album)
			img.SetSizeTag(size)
		}
	default:
		return fmt.Errorf("either --project or --dir is required")
	}

	byPath := make(map[string]*project.ImageItem)
	var items []batch.Item
	for _, img := range proj.TaggedImages() {
		if img.IsCropped && !recrop {
			continue
		}
		byPath[img.FilePath] = img
		items = append(items, batch.Item{
			Path:       img.FilePath,
			CropBox:    img.CropBox,
			SizeTag:    img.SizeTag,
			OutputPath: proj.OutputPath(img),
		})
	}
	if len(items) == 0 {
		fmt.Println("Nothing to crop.")
		return nil
	}

	var suggester *suggest.Suggester
	if !noSuggest {
		suggester = suggest.NewWithCap(suggest.NewSmartcropEngine(), cfg.AnalysisCap)
	}
	runner := batch.NewRunner(processing.New(), suggester, cfg.OutputFormat, cfg.JPEGQuality)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bar := progressbar.NewOptions(len(items),
		progressbar.OptionSetDescription("Cropping"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("images"),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	result := runner.Run(ctx, items, func(p batch.Progress) {
		bar.Add(1)
		if p.Err == nil {
			byPath[p.Path].IsCropped = true
		}
	})
	fmt.Println()

	for _, failure := range result.Failed {
		fmt.Printf("Failed: %s: %v\n", filepath.Base(failure.Path), failure.Err)
	}
	if result.Cancelled {
		fmt.Println("\nInterrupted; partial results were kept.")
	}
	fmt.Printf("\nCropped %d of %d image(s)\n", result.Succeeded, len(items))

	if projectPath != "" {
		if err := proj.Save(projectPath); err != nil {
			return fmt.Errorf("failed to update project: %w", err)
		}
	}

	if result.Succeeded == 0 && len(result.Failed) > 0 {
		return fmt.Errorf("no images were cropped successfully")
	}
	return nil
}
