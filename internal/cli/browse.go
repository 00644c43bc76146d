package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/userdir/internal/cli/pagination"
	"github.com/rshade/userdir/internal/config"
	"github.com/rshade/userdir/internal/tui"
)

// browseOptions holds the presentation flags of the browse command.
type browseOptions struct {
	plain      bool
	noColor    bool
	forceColor bool
}

// detectOutputMode is replaced in tests.
//
//nolint:gochecknoglobals // Test seam for terminal detection.
var detectOutputMode = tui.DetectOutputMode

// runProgram runs a Bubble Tea program. Replaced in tests.
//
//nolint:gochecknoglobals // Test seam for the interactive program.
var runProgram = func(p *tea.Program) (tea.Model, error) {
	return p.Run()
}

// NewBrowseCmd creates the "browse" command, the interactive directory.
func NewBrowseCmd() *cobra.Command {
	params := pagination.NewParams()
	var opts browseOptions

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the user directory interactively",
		Long: `Open a full-screen directory browser.

Press / to search by first name, left and right to change page, d to delete the
selected user and q to quit. When stdout is not a terminal the first page is
printed as a table instead.`,
		Example: `  # Browse with ten users per page
  userdir browse --page-size 10

  # Search name and email while typing
  userdir browse --match contains`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, *params, opts)
		},
	}

	cmd.Flags().IntVar(&params.PageSize, "page-size", 0, "users per page (0 = use config list.page_size)")
	cmd.Flags().StringVar(&params.Match, "match", "", "search mode: prefix (first name) or contains (name and email)")
	cmd.Flags().StringVar(&params.Sort, "sort", "", "sort before paging, e.g. last or email:desc")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print a plain table instead of the browser")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colors (also honors NO_COLOR)")
	cmd.Flags().BoolVar(&opts.forceColor, "force-color", false, "print a styled page even when stdout is not a terminal")

	return cmd
}

func runBrowse(cmd *cobra.Command, params pagination.Params, opts browseOptions) error {
	if err := params.Validate(); err != nil {
		return err
	}

	cfg := config.GetGlobalConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx := cmd.Context()
	if opts.noColor || os.Getenv("NO_COLOR") != "" {
		tui.DisableColors()
	}

	mode := detectOutputMode(opts.forceColor, opts.noColor, opts.plain)
	logger.Debug().Ctx(ctx).Str("output_mode", mode.String()).Msg("browse output mode")

	if mode == tui.OutputModePlain {
		return runList(cmd, params, listOptions{output: "table"})
	}
	if mode == tui.OutputModeStyled {
		view, meta, err := listPage(cmd, cfg, params, nil)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), tui.RenderPage(view, meta.Query))
		return err
	}

	model, err := tui.NewBrowseModel(
		ctx,
		userFetcher(cfg, params),
		params.EffectivePageSize(cfg.List.PageSize),
		filterFor(params.EffectiveMatch(cfg.List.Match)),
	)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := runProgram(p); err != nil {
		return fmt.Errorf("failed to run interactive browser: %w", err)
	}
	return nil
}
