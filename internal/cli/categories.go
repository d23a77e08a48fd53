package cli

import (
	"fmt"

	"github.com/Adda-Baaj/douban-client/internal/app"
	"github.com/Adda-Baaj/douban-client/pkg/douban"
	"github.com/spf13/cobra"
)

func newCategoriesCommand(get func() (*app.App, error)) *cobra.Command {
	var (
		kind, category, typ, output string
		limit, start, pages         int
	)

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Fetch one or more pages of a category listing",
		Example: `  doubanctl categories --kind movie --category 热门 --type 全部
  doubanctl categories --kind tv --category tv --type tv_domestic --pages 3 --output yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := douban.ParseKind(kind)
			if err != nil {
				return err
			}
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive, got %d", limit)
			}
			if start < 0 {
				return fmt.Errorf("--start must not be negative, got %d", start)
			}
			format, err := validateFormat(output)
			if err != nil {
				return err
			}
			a, err := get()
			if err != nil {
				return err
			}

			params := douban.CategoryParams{
				Kind:      k,
				Category:  category,
				Type:      typ,
				PageLimit: limit,
				PageStart: start,
			}

			if pages <= 1 {
				res, err := a.Categories(cmd.Context(), params)
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), format, res)
			}

			results, err := a.FetchPages(cmd.Context(), params, pages)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), format, results)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "media kind: tv or movie")
	cmd.Flags().StringVar(&category, "category", "", "category name, e.g. 热门")
	cmd.Flags().StringVar(&typ, "type", "", "category type, e.g. 全部")
	cmd.Flags().IntVar(&limit, "limit", douban.DefaultPageLimit, "items per page")
	cmd.Flags().IntVar(&start, "start", douban.DefaultPageStart, "offset of the first item")
	cmd.Flags().IntVar(&pages, "pages", 1, "number of consecutive pages to fetch")
	cmd.Flags().StringVarP(&output, "output", "o", formatJSON, "output format: json or yaml")
	_ = cmd.MarkFlagRequired("kind")
	return cmd
}
