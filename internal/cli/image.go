package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Adda-Baaj/douban-client/internal/app"
	"github.com/spf13/cobra"
)

func newImageCommand(get func() (*app.App, error)) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "image <url>",
		Short: "Download an image with browser image headers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(out) == "" {
				return fmt.Errorf("--out is required")
			}
			a, err := get()
			if err != nil {
				return err
			}

			data, err := a.FetchImage(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if dir := filepath.Dir(out); dir != "" && dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create output directory: %w", err)
				}
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write image: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes to %s\n", len(data), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "file to write the image to")
	return cmd
}
