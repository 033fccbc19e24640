package cli

import (
	"shopfront-cli/internal/api"
	"shopfront-cli/internal/tui"

	"github.com/spf13/cobra"
)

func newAdminCmd(app *App) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin console and catalog mutations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return cmd.Help()
			}
			return tui.RunAdmin(newClient(app), token)
		},
	}

	cmd.PersistentFlags().StringVar(&token, "token", envOr("SHOPFRONT_ADMIN_TOKEN", ""), "Admin session token (skips login)")

	cmd.AddCommand(newAdminLoginCmd(app))
	cmd.AddCommand(newAdminProductsCmd(app, &token))
	cmd.AddCommand(newAdminCategoriesCmd(app, &token))

	return cmd
}

// adminClient builds an authenticated client. Missing tokens are not checked
// here: each mutation reports ErrNoSession before any request leaves.
func adminClient(app *App, token string) *api.Client {
	c := newClient(app)
	c.SetToken(token)
	return c
}

func newAdminLoginCmd(app *App) *cobra.Command {
	var login, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print a session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := newClient(app).Login(cmd.Context(), login, password)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]string{"token": tok}})
		},
	}

	cmd.Flags().StringVar(&login, "login", "", "Admin login")
	cmd.Flags().StringVar(&password, "password", "", "Admin password")
	_ = cmd.MarkFlagRequired("login")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newAdminProductsCmd(app *App, token *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Product mutations",
	}
	cmd.AddCommand(newAdminProductsCreateCmd(app, token))
	cmd.AddCommand(newAdminProductsUpdateCmd(app, token))
	cmd.AddCommand(newAdminProductsDeleteCmd(app, token))
	return cmd
}

func productFormFlags(cmd *cobra.Command, form *api.ProductForm, imagePath *string) {
	cmd.Flags().StringVar(&form.Name, "name", "", "Product name")
	cmd.Flags().StringVar(&form.Description, "description", "", "Product description (markdown)")
	cmd.Flags().StringVar(&form.Price, "price", "", "Price")
	cmd.Flags().StringVar(&form.CategoryID, "category", "", "Category id")
	cmd.Flags().BoolVar(&form.Available, "available", false, "Product is in stock")
	cmd.Flags().StringVar(&form.BuyURL, "buy-url", "", "External buy URL")
	cmd.Flags().StringVar(imagePath, "image", "", "Path to an image file to upload")
}

func newAdminProductsCreateCmd(app *App, token *string) *cobra.Command {
	var (
		form      api.ProductForm
		imagePath string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := adminClient(app, *token).CreateProduct(cmd.Context(), form, imagePath); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": "ok"})
		},
	}

	productFormFlags(cmd, &form, &imagePath)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newAdminProductsUpdateCmd(app *App, token *string) *cobra.Command {
	var (
		id        int
		form      api.ProductForm
		imagePath string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := adminClient(app, *token).UpdateProduct(cmd.Context(), id, form, imagePath); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": "ok"})
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Product id")
	productFormFlags(cmd, &form, &imagePath)
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newAdminProductsDeleteCmd(app *App, token *string) *cobra.Command {
	var id int

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := adminClient(app, *token).DeleteProduct(cmd.Context(), id); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": "ok"})
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Product id")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newAdminCategoriesCmd(app *App, token *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Category mutations",
	}
	cmd.AddCommand(newAdminCategoriesCreateCmd(app, token))
	cmd.AddCommand(newAdminCategoriesDeleteCmd(app, token))
	return cmd
}

func newAdminCategoriesCreateCmd(app *App, token *string) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := adminClient(app, *token).CreateCategory(cmd.Context(), name); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": "ok"})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Category name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newAdminCategoriesDeleteCmd(app *App, token *string) *cobra.Command {
	var id int

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := adminClient(app, *token).DeleteCategory(cmd.Context(), id); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": "ok"})
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Category id")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}
