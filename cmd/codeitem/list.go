package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/codeitem/config"
	"github.com/viant/codeitem/inspector"
	"github.com/viant/codeitem/inspector/repository"
	"github.com/viant/codeitem/item"
	"gopkg.in/yaml.v3"
)

// listing represents items reported for one command line path
type listing struct {
	Path    string              `json:"path" yaml:"path"`
	Project *repository.Project `json:"project,omitempty" yaml:"project,omitempty"`
	Files   []*fileListing      `json:"files" yaml:"files"`
}

type fileListing struct {
	URL   string              `json:"url" yaml:"url"`
	Items []*item.Description `json:"items" yaml:"items"`
}

func listCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list [path...]",
		Short: "List code items of files or directories",
		Long: `List code items of files or directories.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. YAML config (--config)
  3. .env file (--env-file)
  4. CODEITEM_* environment variables
  5. Command line flags`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig(ctx, cmd, opts)
			if err != nil {
				return err
			}
			return runList(ctx, cmd.OutOrStdout(), cfg, args)
		},
	}
}

func runList(ctx context.Context, w io.Writer, cfg *config.Config, paths []string) error {
	logger := newLogger(cfg)
	factory, err := inspector.NewFactory(cfg, inspector.WithLogger(logger))
	if err != nil {
		return err
	}
	detector := repository.New()
	var listings []*listing
	for _, location := range paths {
		info, err := os.Stat(location)
		if err != nil {
			return fmt.Errorf("failed to inspect %v: %w", location, err)
		}
		var files []*inspector.File
		if info.IsDir() {
			files, err = factory.InspectDir(ctx, location)
		} else {
			var file *inspector.File
			if file, err = factory.InspectFile(ctx, location); err == nil {
				files = append(files, file)
			}
		}
		if err != nil {
			return err
		}
		aListing := &listing{Path: location}
		if aListing.Project, err = detector.DetectProject(ctx, location); err != nil {
			logger.Debug().Err(err).Str("path", location).Msg("project not detected")
		}
		for _, file := range files {
			fileListing := &fileListing{URL: file.Document.URL}
			for _, anItem := range file.Items {
				description, err := item.Describe(anItem)
				if err != nil {
					return fmt.Errorf("failed to describe %v in %v: %w", anItem.Base().Name, file.Document.URL, err)
				}
				fileListing.Items = append(fileListing.Items, description)
			}
			aListing.Files = append(aListing.Files, fileListing)
		}
		listings = append(listings, aListing)
	}
	return encode(w, cfg.Format, listings)
}

func encode(w io.Writer, format string, value interface{}) error {
	if format == config.FormatJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(value)
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(value); err != nil {
		return err
	}
	return encoder.Close()
}
