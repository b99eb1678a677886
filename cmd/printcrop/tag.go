package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davidhanko/printcrop/pkg/geometry"
	"github.com/davidhanko/printcrop/pkg/project"
)

var tagCmd = &cobra.Command{
	Use:   "tag [project-file] [image...]",
	Short: "Tag project images with an album and a print size",
	Long: `Tag assigns an album and/or print size to images in a project.
Without image arguments every untagged image is tagged. Changing an image's
size tag discards its crop box, since the box no longer matches the ratio.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTag,
}

func init() {
	rootCmd.AddCommand(tagCmd)

	tagCmd.Flags().String("size", "", "Print size, e.g. 9x6")
	tagCmd.Flags().String("album", "", "Album name")
}

func runTag(cmd *cobra.Command, args []string) error {
	size := mustGetString(cmd, "size")
	album := mustGetString(cmd, "album")
	if size == "" && album == "" {
		return fmt.Errorf("at least one of --size or --album is required")
	}
	if size != "" {
		if _, err := geometry.ParseSize(size); err != nil {
			return err
		}
	}

	proj, err := project.Load(args[0])
	if err != nil {
		return err
	}

	var targets []*project.ImageItem
	if len(args) > 1 {
		for _, path := range args[1:] {
			item := proj.ImageByPath(path)
			if item == nil {
				return fmt.Errorf("image %s is not part of the project", path)
			}
			targets = append(targets, item)
		}
	} else {
		targets = proj.UntaggedImages()
	}

	for _, item := range targets {
		if album != "" {
			item.SetAlbumTag(album)
		}
		if size != "" {
			item.SetSizeTag(size)
		}
	}

	if err := proj.Save(args[0]); err != nil {
		return err
	}
	fmt.Printf("Tagged %d image(s)\n", len(targets))
	return nil
}
