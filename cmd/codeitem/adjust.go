package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/viant/afs"
	"github.com/viant/codeitem/document"
	"github.com/viant/codeitem/item"
)

func adjustCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "adjust <file> <line>",
		Short: "Print the start of a line moved up over leading // comment lines",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid line %q: %w", args[1], err)
			}
			ctx := cmd.Context()
			cfg, err := loadConfig(ctx, cmd, opts)
			if err != nil {
				return err
			}
			return runAdjust(ctx, cmd.OutOrStdout(), newLogger(cfg), args[0], line)
		},
	}
}

func runAdjust(ctx context.Context, w io.Writer, logger zerolog.Logger, URL string, line int) error {
	doc, err := document.Load(ctx, afs.New(), URL)
	if err != nil {
		return err
	}
	original, err := doc.StartOfLine(line)
	if err != nil {
		return err
	}
	adjusted, err := item.AdjustStartForComments(doc, original)
	if err != nil {
		return err
	}
	logger.Debug().Str("url", URL).Stringer("original", original).Stringer("adjusted", adjusted).Msg("adjusted")
	_, err = fmt.Fprintf(w, "%v -> %v\n", original, adjusted)
	return err
}
