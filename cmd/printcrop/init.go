package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/davidhanko/printcrop/pkg/project"
)

var initCmd = &cobra.Command{
	Use:   "init [project-file]",
	Short: "Create a project file from a directory of images",
	Long: `Init scans a directory for supported images and writes a project
file listing them, ready for tagging and cropping.`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("dir", ".", "Directory with source images")
	initCmd.Flags().String("out", "output", "Output directory for crops")
	initCmd.Flags().String("name", "", "Project name (default: directory name)")
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir := mustGetString(cmd, "dir")
	name := mustGetString(cmd, "name")
	if name == "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return err
		}
		name = filepath.Base(abs)
	}

	proj := project.New(name, dir, mustGetString(cmd, "out"))
	if err := proj.LoadImages(cfg.SupportedFormats); err != nil {
		return err
	}
	if err := proj.Save(args[0]); err != nil {
		return err
	}

	fmt.Printf("Project %q created with %d image(s)\n", name, len(proj.Images))
	return nil
}
