package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/userdir/internal/cli/pagination"
	"github.com/rshade/userdir/internal/config"
	"github.com/rshade/userdir/internal/listing"
	"github.com/rshade/userdir/internal/users"
)

// ErrUnsupportedFormat reports an unknown --output value.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// listOptions holds the flags of the list command beyond pagination.
type listOptions struct {
	deletes []string
	output  string
}

// NewListCmd creates the "list" command, which prints one page of the directory.
func NewListCmd() *cobra.Command {
	params := pagination.NewParams()
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of the user directory",
		Long: `Fetch the directory, apply the search query, move to the requested page,
remove any --delete ids in order, and print the resulting page.

Deleting keeps the query and clamps the page, so removing the only user on the
last page shows the new last page instead.`,
		Example: `  # First page, five users per page
  userdir list

  # Users whose first name starts with "al", page 2, as JSON
  userdir list -q al --page 2 --output json

  # Search name and email, sorted by last name
  userdir list --match contains -q gibson --sort last`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, *params, opts)
		},
	}

	params.AddFlags(cmd)
	cmd.Flags().StringArrayVar(&opts.deletes, "delete", nil, "remove the user with this id before printing (repeatable)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output format: "+strings.Join(config.OutputFormats, ", ")+
		" (default from config)")

	return cmd
}

func runList(cmd *cobra.Command, params pagination.Params, opts listOptions) error {
	if err := params.Validate(); err != nil {
		return err
	}

	cfg := config.GetGlobalConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	format := strings.ToLower(opts.output)
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	if !config.IsValidOutputFormat(format) {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	view, meta, err := listPage(cmd, cfg, params, opts.deletes)
	if err != nil {
		return err
	}
	return renderPage(cmd.OutOrStdout(), format, view, meta)
}

// listPage fetches the directory, applies the query, moves to the requested
// page and removes deletes in order.
func listPage(
	cmd *cobra.Command,
	cfg *config.Config,
	params pagination.Params,
	deletes []string,
) (listing.PageView[users.User], pagination.Meta, error) {
	ctx := cmd.Context()
	controller, err := loadDirectory(ctx, cfg, params)
	if err != nil {
		return listing.PageView[users.User]{}, pagination.Meta{}, err
	}

	controller.SetFilter(params.Query)
	view, err := controller.GoToPage(params.PageIndex())
	if err != nil {
		return view, pagination.Meta{}, fmt.Errorf("--page %d: %w", params.Page, err)
	}
	for _, id := range deletes {
		before := controller.Len()
		view = controller.DeleteRecord(id)
		if controller.Len() == before {
			logger.Warn().Ctx(ctx).Str("user_id", id).Msg("no user with this id, nothing deleted")
		}
	}

	logger.Info().Ctx(ctx).
		Int("users", controller.Len()).
		Int("matched", controller.FilteredLen()).
		Int("page", view.PageIndex+1).
		Int("total_pages", view.TotalPages).
		Msg("rendering page")

	return view, pagination.NewMeta(view, controller.PageSize(), controller.Query()), nil
}
