package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"shopfront-cli/internal/api"
	"shopfront-cli/internal/format"
	"shopfront-cli/internal/store"
	"shopfront-cli/internal/tui"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type App struct {
	APIURL     string
	StateDir   string
	Query      string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	// Local .env is optional; real env always wins because godotenv never
	// overwrites existing variables.
	_ = godotenv.Load()

	app := &App{}

	cmd := &cobra.Command{
		Use:          "shopfront",
		Short:        "Shopfront storefront CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive storefront TUI
  shopfront

  # Open the TUI on a bookmarked query
  shopfront --query "category_id=2&search=milk"

  # Scriptable commands
  shopfront products list --search milk --in-stock
  shopfront categories list

  # Admin console (prompts for login unless a token is given)
  shopfront admin
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runShopTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.APIURL, "api", envOr("SHOPFRONT_API_URL", "http://localhost:8080"), "Shop API base URL")
	cmd.PersistentFlags().StringVar(&app.StateDir, "state-dir", envOr("SHOPFRONT_STATE_DIR", ""), "Directory for persisted UI state (default: user config dir)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&app.Query, "query", "", "Initial query string, e.g. \"search=milk&page=2\" (default: last session)")

	cmd.AddCommand(newProductsCmd(app))
	cmd.AddCommand(newCategoriesCmd(app))
	cmd.AddCommand(newAdminCmd(app))

	return cmd
}

func newClient(app *App) *api.Client {
	return api.New(app.APIURL, nil)
}

func stateStore(app *App) store.Store {
	dir := app.StateDir
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			// No usable config dir: run with in-memory state only.
			return store.Store{}
		}
		dir = d
	}
	return store.Store{Dir: dir}
}

func runShopTUI(app *App) error {
	st := stateStore(app)
	query := app.Query
	if query == "" {
		// Reopen where the last session left off.
		if ui, err := st.LoadUIState(context.Background()); err == nil {
			query = ui.LastQuery
		}
	}
	return tui.Run(newClient(app), st, query)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
