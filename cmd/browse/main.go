package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"mealgrid/internal/adapters/mealapi"
	"mealgrid/internal/app"
	"mealgrid/internal/catalog"
	"mealgrid/internal/domain"
	"mealgrid/internal/search"
	"mealgrid/internal/shared"
)

// backend is what every subcommand talks to: the HTTP API or an
// in-process catalog.
type backend interface {
	Search(ctx context.Context, term string, filters []string) (domain.SearchPage, error)
	Meal(ctx context.Context, id int64) (domain.MealView, error)
	Restaurants(ctx context.Context) ([]domain.RestaurantView, error)
	Restaurant(ctx context.Context, id int64) (domain.RestaurantView, error)
	Facets(ctx context.Context) (domain.Facets, error)
	Quote(ctx context.Context, lines []domain.CartLine) (domain.Quote, error)
}

type options struct {
	apiURL  string
	local   bool
	size    int
	seed    uint64
	timeout time.Duration
	verbose bool
}

func newRootCmd(cfg shared.Config) *cobra.Command {
	o := &options{}
	var be backend

	root := &cobra.Command{
		Use:   "browse",
		Short: "Browse the mealgrid catalog from a terminal",
		Long: `browse searches meals, lists restaurants and prices carts.

By default it talks to a running API. With --local it generates a catalog
in-process, which is handy for trying filters without a server.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl := zerolog.WarnLevel
			if o.verbose {
				lvl = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen}).
				Level(lvl).With().Timestamp().Logger()

			if o.local {
				be = newLocal(o.size, o.seed)
				return nil
			}
			cl, err := mealapi.New(o.apiURL, 10)
			if err != nil {
				return fmt.Errorf("api client: %w", err)
			}
			be = cl
			return nil
		},
	}

	root.PersistentFlags().StringVar(&o.apiURL, "api", cfg.APIBaseURL, "API base URL")
	root.PersistentFlags().BoolVar(&o.local, "local", false, "Use an in-process catalog instead of the API")
	root.PersistentFlags().IntVar(&o.size, "size", cfg.CatalogSize, "Catalog size for --local")
	root.PersistentFlags().Uint64Var(&o.seed, "seed", cfg.CatalogSeed, "Catalog seed for --local (0 = random)")
	root.PersistentFlags().DurationVar(&o.timeout, "timeout", 10*time.Second, "Operation timeout")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "Enable debug logging")

	ctxFor := func(cmd *cobra.Command) (context.Context, context.CancelFunc) {
		return context.WithTimeout(cmd.Context(), o.timeout)
	}
	backendFn := func() backend { return be }

	root.AddCommand(
		newSearchCmd(backendFn, ctxFor),
		newMealCmd(backendFn, ctxFor),
		newRestaurantsCmd(backendFn, ctxFor),
		newFacetsCmd(backendFn, ctxFor),
		newQuoteCmd(backendFn, ctxFor),
	)
	return root
}

// local serves the same calls from a snapshot generated at startup.
type local struct{ q *app.QueryService }

func newLocal(size int, seed uint64) *local {
	snap := catalog.NewSnapshot(size, catalog.NewRand(seed))
	log.Debug().Str("generation", snap.Generation).Int("meals", len(snap.Meals)).Msg("local catalog generated")
	return &local{q: app.NewQueryService(snap, nil, 0)}
}

// Search replays the arguments through a browse session, so an empty term
// with no filters stays in browsing mode.
func (l *local) Search(ctx context.Context, term string, filters []string) (domain.SearchPage, error) {
	s := search.NewSession()
	s.SetSearch(term)
	for _, f := range filters {
		s.Apply(domain.ParseFilterValue(f))
	}
	if s.Mode() == search.Browsing {
		return domain.SearchPage{Generation: l.q.Generation(), Meals: []domain.MealView{}}, nil
	}
	return l.q.Search(ctx, s.State().Query())
}

func (l *local) Meal(ctx context.Context, id int64) (domain.MealView, error) {
	return l.q.GetMeal(ctx, id)
}

func (l *local) Restaurants(ctx context.Context) ([]domain.RestaurantView, error) {
	return l.q.ListRestaurants(ctx), nil
}

func (l *local) Restaurant(ctx context.Context, id int64) (domain.RestaurantView, error) {
	return l.q.GetRestaurant(ctx, id)
}

func (l *local) Facets(ctx context.Context) (domain.Facets, error) { return l.q.Facets(), nil }

func (l *local) Quote(ctx context.Context, lines []domain.CartLine) (domain.Quote, error) {
	return l.q.Quote(ctx, lines)
}

func main() {
	if err := newRootCmd(shared.Load()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
