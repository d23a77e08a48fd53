package cli

import (
	"fmt"
	"time"

	"github.com/Adda-Baaj/douban-client/internal/app"
	"github.com/spf13/cobra"
)

func newUserAgentCommand(get func() (*app.App, error)) *cobra.Command {
	var showExpiry bool

	cmd := &cobra.Command{
		Use:   "useragent",
		Short: "Print the cached synthetic browser user agent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := get()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, a.UserAgent())
			if showExpiry {
				if expiry, ok := a.UserAgentExpiry(); ok {
					fmt.Fprintf(out, "expires: %s\n", expiry.UTC().Format(time.RFC3339))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showExpiry, "expiry", false, "also print when the user agent is regenerated")
	return cmd
}

func newHeadersCommand(get func() (*app.App, error)) *cobra.Command {
	var (
		image  bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "headers",
		Short: "Print the browser header table used for API or image requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := validateFormat(output)
			if err != nil {
				return err
			}
			a, err := get()
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), format, a.Headers(image))
		},
	}
	cmd.Flags().BoolVar(&image, "image", false, "print the image request headers")
	cmd.Flags().StringVarP(&output, "output", "o", formatJSON, "output format: json or yaml")
	return cmd
}
