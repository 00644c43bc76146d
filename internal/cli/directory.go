package cli

import (
	"context"

	"github.com/rshade/userdir/internal/cli/pagination"
	"github.com/rshade/userdir/internal/config"
	"github.com/rshade/userdir/internal/listing"
	"github.com/rshade/userdir/internal/logging"
	"github.com/rshade/userdir/internal/tui"
	"github.com/rshade/userdir/internal/users"
)

// filterFor returns the search predicate for a match mode.
// prefix matches the start of the first name; contains matches anywhere in
// the full name or email.
func filterFor(match string) listing.FilterFunc[users.User] {
	if match == config.MatchContains {
		return listing.ContainsFold(users.FullNameOf, users.EmailOf)
	}
	return listing.PrefixFold(users.FirstNameOf)
}

// userFetcher returns a fetcher that loads the directory from the configured
// source and applies the requested sort. params must already be validated.
func userFetcher(cfg *config.Config, params pagination.Params) tui.UserFetcher {
	source := cfg.NewSource()
	return func(ctx context.Context) []users.User {
		all := source.Fetch(ctx)
		if params.Sort == "" {
			return all
		}

		field, order, err := pagination.ParseSort(params.Sort)
		if err != nil {
			return all
		}

		l := logging.FromContext(ctx)
		l.Debug().Str(logging.FieldComponent, "cli").
			Str("field", field).Str("order", order).
			Msg("sorting directory")
		return users.Sort(all, field, order)
	}
}

// loadDirectory fetches the directory and builds a controller over it.
func loadDirectory(
	ctx context.Context,
	cfg *config.Config,
	params pagination.Params,
) (*tui.UserController, error) {
	all := userFetcher(cfg, params)(ctx)
	return listing.New(
		all,
		params.EffectivePageSize(cfg.List.PageSize),
		filterFor(params.EffectiveMatch(cfg.List.Match)),
		users.IDOf,
	)
}
