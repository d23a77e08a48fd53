package cli

import (
	"fmt"

	"github.com/Adda-Baaj/douban-client/internal/app"
	"github.com/spf13/cobra"
)

// Builder constructs the runtime lazily so help and flag errors never touch config.
type Builder func() (*app.App, error)

// NewRootCommand returns doubanctl with every subcommand attached.
func NewRootCommand(build Builder) *cobra.Command {
	var cached *app.App
	get := func() (*app.App, error) {
		if cached != nil {
			return cached, nil
		}
		if build == nil {
			return nil, fmt.Errorf("no runtime builder configured")
		}
		a, err := build()
		if err != nil {
			return nil, fmt.Errorf("build runtime: %w", err)
		}
		cached = a
		return a, nil
	}

	root := &cobra.Command{
		Use:   "doubanctl",
		Short: "Browse douban categories through the local API",
		Long: `doubanctl queries the local douban category endpoint and exposes the
browser identity (user agent and header tables) used for upstream requests.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCategoriesCommand(get),
		newUserAgentCommand(get),
		newHeadersCommand(get),
		newImageCommand(get),
	)
	return root
}
