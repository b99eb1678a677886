// Package project models a print-cropping project: an input folder of
// photographs, the tags assigned to each one, and the output folder that
// receives the cropped results. The project file is the only durable record
// of crop boxes, always in source-image pixel coordinates.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/davidhanko/printcrop/internal/utils"
	"github.com/davidhanko/printcrop/pkg/geometry"
)

// ImageItem is one photograph and its tagging state. The item exclusively
// owns its crop box; the box is created lazily when the image first enters
// interactive crop mode and discarded whenever the size tag changes, since a
// new ratio invalidates the old geometry.
type ImageItem struct {
	FilePath  string         `json:"file_path"`
	AlbumTag  string         `json:"album_tag,omitempty"`
	SizeTag   string         `json:"size_tag,omitempty"`
	CropBox   *geometry.Rect `json:"crop_box,omitempty"`
	IsCropped bool           `json:"is_cropped"`
}

// SetAlbumTag assigns the album tag.
func (it *ImageItem) SetAlbumTag(album string) {
	it.AlbumTag = album
}

// SetSizeTag assigns the size tag. Changing it drops the crop box and the
// cropped flag.
func (it *ImageItem) SetSizeTag(size string) {
	if it.SizeTag == size {
		return
	}
	it.SizeTag = size
	it.CropBox = nil
	it.IsCropped = false
}

// ClearTags removes all tags and the crop box.
func (it *ImageItem) ClearTags() {
	it.AlbumTag = ""
	it.SizeTag = ""
	it.CropBox = nil
	it.IsCropped = false
}

// HasTags reports whether any tag is assigned.
func (it *ImageItem) HasTags() bool {
	return it.AlbumTag != "" || it.SizeTag != ""
}

// FullyTagged reports whether both album and size tags are assigned.
func (it *ImageItem) FullyTagged() bool {
	return it.AlbumTag != "" && it.SizeTag != ""
}

// Project is a named pairing of input and output folders with the images
// found in the input folder.
type Project struct {
	Name         string       `json:"name"`
	InputFolder  string       `json:"input_folder"`
	OutputFolder string       `json:"output_folder"`
	Images       []*ImageItem `json:"images"`
}

// New creates an empty project.
func New(name, inputFolder, outputFolder string) *Project {
	return &Project{Name: name, InputFolder: inputFolder, OutputFolder: outputFolder}
}

// LoadImages scans the input folder (non-recursive, sorted by filename) and
// replaces the image list with one entry per supported file. Existing tags
// are lost; callers wanting to preserve them should load the project file
// instead.
func (p *Project) LoadImages(supportedFormats []string) error {
	entries, err := os.ReadDir(p.InputFolder)
	if err != nil {
		return fmt.Errorf("reading input folder: %w", err)
	}

	p.Images = p.Images[:0]
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !utils.IsImageFile(entry.Name(), supportedFormats) {
			continue
		}
		p.Images = append(p.Images, &ImageItem{
			FilePath: filepath.Join(p.InputFolder, entry.Name()),
		})
	}
	sort.Slice(p.Images, func(i, j int) bool {
		return p.Images[i].FilePath < p.Images[j].FilePath
	})
	return nil
}

// ImageByPath returns the item for a file path, or nil.
func (p *Project) ImageByPath(filePath string) *ImageItem {
	for _, img := range p.Images {
		if img.FilePath == filePath {
			return img
		}
	}
	return nil
}

// TaggedImages returns all images with both album and size tags.
func (p *Project) TaggedImages() []*ImageItem {
	var tagged []*ImageItem
	for _, img := range p.Images {
		if img.FullyTagged() {
			tagged = append(tagged, img)
		}
	}
	return tagged
}

// UntaggedImages returns all images with no tags at all.
func (p *Project) UntaggedImages() []*ImageItem {
	var untagged []*ImageItem
	for _, img := range p.Images {
		if !img.HasTags() {
			untagged = append(untagged, img)
		}
	}
	return untagged
}

// OutputPath builds the output file path for an item:
// <output>/<album>/<size>/<basename>.jpg. Tags are sanitized so they are
// safe as path segments.
func (p *Project) OutputPath(item *ImageItem) string {
	base := filepath.Base(item.FilePath)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + ".jpg"
	return filepath.Join(
		p.OutputFolder,
		utils.SanitizeFilename(item.AlbumTag),
		utils.SanitizeFilename(item.SizeTag),
		name,
	)
}

// Save writes the project as indented JSON.
func (p *Project) Save(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling project: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing project file: %w", err)
	}
	return nil
}

// Load reads a project file written by Save.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing project file: %w", err)
	}
	return &p, nil
}
