package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mealgrid/internal/domain"
)

type ctxFunc func(*cobra.Command) (context.Context, context.CancelFunc)

func newSearchCmd(be func() backend, ctxFor ctxFunc) *cobra.Command {
	var filters []string
	cmd := &cobra.Command{
		Use:   "search [term]",
		Short: "Search meals by term and filters",
		Long: `Search meals whose name, restaurant or cuisine contains the term and that
match every filter. Filters are facet values such as "Chinese", "Noodles",
"Under $10" or "$$"; use facet:value (e.g. foodstyle:Dessert) to pick a facet
explicitly. With neither a term nor a filter the restaurant list is shown.`,
		Example: `  browse search dragon
  browse search -f Chinese -f Noodles
  browse search --local -f "Under \$10"`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := ctxFor(cmd)
			defer cancel()

			page, err := be().Search(ctx, strings.Join(args, " "), filters)
			if err != nil {
				return err
			}
			if !page.Active {
				rs, err := be().Restaurants(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "No search or filter active. Restaurants:")
				printRestaurants(cmd.OutOrStdout(), rs)
				return nil
			}
			printMeals(cmd.OutOrStdout(), page.Meals)
			fmt.Fprintf(cmd.OutOrStdout(), "%d meals\n", page.Count)
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&filters, "filter", "f", nil, "Filter value (repeatable)")
	return cmd
}

func newMealCmd(be func() backend, ctxFor ctxFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "meal <id>",
		Short: "Show one meal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("meal id %q: %w", args[0], err)
			}
			ctx, cancel := ctxFor(cmd)
			defer cancel()
			m, err := be().Meal(ctx, id)
			if err != nil {
				return err
			}
			printMeal(cmd.OutOrStdout(), m)
			return nil
		},
	}
}

func newRestaurantsCmd(be func() backend, ctxFor ctxFunc) *cobra.Command {
	return &cobra.Command{
		Use:     "restaurants [id]",
		Aliases: []string{"restaurant"},
		Short:   "List restaurants, or show one restaurant's menu",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := ctxFor(cmd)
			defer cancel()
			if len(args) == 0 {
				rs, err := be().Restaurants(ctx)
				if err != nil {
					return err
				}
				printRestaurants(cmd.OutOrStdout(), rs)
				return nil
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("restaurant id %q: %w", args[0], err)
			}
			rv, err := be().Restaurant(ctx, id)
			if err != nil {
				return err
			}
			printRestaurants(cmd.OutOrStdout(), []domain.RestaurantView{rv})
			fmt.Fprintln(cmd.OutOrStdout())
			printMeals(cmd.OutOrStdout(), rv.Menu)
			return nil
		},
	}
}

func newFacetsCmd(be func() backend, ctxFor ctxFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "facets",
		Short: "List the filter vocabularies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := ctxFor(cmd)
			defer cancel()
			f, err := be().Facets(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, sec := range []struct {
				name   string
				groups []domain.FacetGroup
			}{
				{"cuisine", f.Cuisine},
				{"mealtime", f.MealTime},
				{"foodstyle", f.FoodStyle},
				{"price", f.Price},
				{"dietary", f.Dietary},
			} {
				fmt.Fprintf(out, "%s:\n", sec.name)
				for _, g := range sec.groups {
					fmt.Fprintf(out, "  %-10s %s\n", g.Name, strings.Join(g.Values, ", "))
				}
			}
			return nil
		},
	}
}

func newQuoteCmd(be func() backend, ctxFor ctxFunc) *cobra.Command {
	return &cobra.Command{
		Use:     "quote <meal_id[:qty]>...",
		Short:   "Price a cart",
		Example: "  browse quote 1000:2 1001",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := parseCartLines(args)
			if err != nil {
				return err
			}
			ctx, cancel := ctxFor(cmd)
			defer cancel()
			q, err := be().Quote(ctx, lines)
			if err != nil {
				return err
			}
			printQuote(cmd.OutOrStdout(), q)
			return nil
		},
	}
}

// parseCartLines reads "id" or "id:qty" arguments.
func parseCartLines(args []string) ([]domain.CartLine, error) {
	lines := make([]domain.CartLine, 0, len(args))
	for _, a := range args {
		idStr, qtyStr, hasQty := strings.Cut(a, ":")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cart line %q: bad meal id", a)
		}
		qty := 1
		if hasQty {
			if qty, err = strconv.Atoi(qtyStr); err != nil {
				return nil, fmt.Errorf("cart line %q: bad quantity", a)
			}
		}
		lines = append(lines, domain.CartLine{MealID: id, Quantity: qty})
	}
	return lines, nil
}

// ---- rendering ----

func printMeals(w io.Writer, ms []domain.MealView) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tRESTAURANT\tCUISINE\tPRICE\tRATING\tWHEN\tTAGS")
	for _, m := range ms {
		name := m.Name
		if m.Popular {
			name += " *"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t$%.2f %s\t%.1f\t%s\t%s\n",
			m.ID, name, m.Restaurant, m.Cuisine, m.Price, m.PriceTier.Symbol(), m.Rating,
			join(m.MealTimes), join(m.Dietary))
	}
	_ = tw.Flush()
}

func printMeal(w io.Writer, m domain.MealView) {
	fmt.Fprintf(w, "%s (#%d)\n", m.Name, m.ID)
	fmt.Fprintf(w, "  restaurant  %s\n", m.Restaurant)
	fmt.Fprintf(w, "  cuisine     %s\n", m.Cuisine)
	fmt.Fprintf(w, "  price       $%.2f (%s)\n", m.Price, m.PriceLabel)
	fmt.Fprintf(w, "  rating      %.1f\n", m.Rating)
	fmt.Fprintf(w, "  meal times  %s\n", join(m.MealTimes))
	fmt.Fprintf(w, "  styles      %s\n", join(m.FoodStyles))
	fmt.Fprintf(w, "  dietary     %s\n", join(m.Dietary))
	fmt.Fprintf(w, "  image       %s\n", m.Image)
}

func printRestaurants(w io.Writer, rs []domain.RestaurantView) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCUISINE\tRATING\tDELIVERY\tPRICE\tPROMO")
	for _, r := range rs {
		promo := ""
		if r.Promotion != nil {
			promo = *r.Promotion
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.1f\t%d min, $%.2f\t%s\t%s\n",
			r.ID, r.Name, r.Cuisine, r.Rating, r.DeliveryMinutes, r.DeliveryFee, r.PriceLabel, promo)
	}
	_ = tw.Flush()
}

func printQuote(w io.Writer, q domain.Quote) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	for _, l := range q.Lines {
		fmt.Fprintf(tw, "%dx %s\t$%.2f\t\n", l.Quantity, l.Name, l.LineTotal)
	}
	fmt.Fprintf(tw, "subtotal\t$%.2f\t\n", q.Subtotal)
	fmt.Fprintf(tw, "delivery\t$%.2f\t\n", q.DeliveryFee)
	fmt.Fprintf(tw, "service\t$%.2f\t\n", q.ServiceFee)
	fmt.Fprintf(tw, "total\t$%.2f\t\n", q.Total)
	_ = tw.Flush()
}

func join[T ~string](vs []T) string {
	if len(vs) == 0 {
		return "-"
	}
	ss := make([]string, len(vs))
	for i, v := range vs {
		ss[i] = string(v)
	}
	return strings.Join(ss, ", ")
}
