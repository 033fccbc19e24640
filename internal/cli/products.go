package cli

import (
	"fmt"

	"shopfront-cli/internal/catalog"

	"github.com/spf13/cobra"
)

func newProductsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Product commands",
	}
	cmd.AddCommand(newProductsListCmd(app))
	return cmd
}

func newProductsListCmd(app *App) *cobra.Command {
	var (
		rawQuery string
		search   string
		category string
		minPrice string
		maxPrice string
		inStock  bool
		sortKey  string
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products matching the given filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := rawQuery
			if query == "" {
				f := catalog.DefaultFilters()
				f.Search = search
				f.CategoryID = category
				f.MinPrice = minPrice
				f.MaxPrice = maxPrice
				f.InStock = inStock
				if sortKey != "" {
					s := catalog.Sort(sortKey)
					if !catalog.ValidSort(s) {
						return writeErr(cmd, fmt.Errorf("unknown sort %q", sortKey))
					}
					f.Sort = s
				}
				if page > 0 {
					f.Page = page
				}
				if pageSize > 0 {
					f.PageSize = pageSize
				}
				query = catalog.EncodeQuery(f)
			}

			items, err := newClient(app).FetchProducts(cmd.Context(), query)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": items})
		},
	}

	cmd.Flags().StringVar(&rawQuery, "query", "", "Raw query string (overrides the individual filter flags)")
	cmd.Flags().StringVar(&search, "search", "", "Search text")
	cmd.Flags().StringVar(&category, "category", "", "Category id")
	cmd.Flags().StringVar(&minPrice, "min-price", "", "Minimum price")
	cmd.Flags().StringVar(&maxPrice, "max-price", "", "Maximum price")
	cmd.Flags().BoolVar(&inStock, "in-stock", false, "Only products in stock")
	cmd.Flags().StringVar(&sortKey, "sort", "", "Sort order (price_asc|price_desc|name_asc|name_desc)")
	cmd.Flags().IntVar(&page, "page", 0, "Page number (1-based)")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Items per page")

	return cmd
}
