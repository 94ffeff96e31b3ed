package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"countrydex/internal/app"
	"countrydex/internal/catalog"
	"countrydex/internal/domain"
	"countrydex/internal/filter"
	"countrydex/internal/ui/views"
)

type listOptions struct {
	search   string
	language string
	region   string
	limit    int
	options  bool
}

func newListCommand(root *rootOptions) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the countries matching a search without starting the TUI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.limit < 0 {
				return fmt.Errorf("--limit must not be negative, got %d", opts.limit)
			}
			e, err := root.setup(cmd)
			if err != nil {
				return err
			}
			defer e.close()
			cfg := e.cfg

			store := catalog.NewStore()
			settings := app.Settings{ShowMoreStep: cfg.UI.ShowMoreStep, InitialVisible: opts.limit}
			controller := app.NewController(settings, store, e.bus, e.logger)

			countries, err := newLoader(cfg, store, e.logger).Load(cmd.Context())
			if err != nil {
				controller.Dispatch(app.CatalogLoadFailed{Err: err})
				fmt.Fprintln(cmd.ErrOrStderr(), app.FetchFailedMessage)
				return err
			}
			controller.Dispatch(app.CatalogLoaded{Countries: countries})

			out := cmd.OutOrStdout()
			if opts.options {
				return printOptions(out, controller.Options())
			}

			controller.Dispatch(app.SearchInput{Text: opts.search})
			controller.Dispatch(app.LanguageFilterChanged{Value: opts.language})
			controller.Dispatch(app.RegionFilterChanged{Value: opts.region})

			shown := controller.Filtered()
			if opts.limit > 0 {
				shown = controller.Visible()
			}
			return printCountries(out, shown, controller.State())
		},
	}

	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "case-insensitive name search")
	cmd.Flags().StringVarP(&opts.language, "language", "l", "", "only countries speaking this language")
	cmd.Flags().StringVarP(&opts.region, "region", "r", "", "only countries in this region")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 0, "show at most this many countries (0 for all)")
	cmd.Flags().BoolVar(&opts.options, "options", false, "print the available languages and regions instead")
	return cmd
}

func printCountries(out io.Writer, countries []domain.Country, snap app.Snapshot) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCAPITAL\tREGION\tPOPULATION")
	for _, c := range countries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Name, c.CapitalOr(views.NoCapital), c.Region, views.FormatPopulation(c.Population))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	summary := fmt.Sprintf("Showing %d of %d", len(countries), snap.FilteredSize)
	if snap.Criteria.Active() {
		summary += fmt.Sprintf(" (%s)", snap.Criteria)
	}
	_, err := fmt.Fprintln(out, summary)
	return err
}

func printOptions(out io.Writer, opts filter.Options) error {
	_, err := fmt.Fprintf(out, "Languages: %s\nRegions: %s\n",
		strings.Join(opts.Languages, ", "), strings.Join(opts.Regions, ", "))
	return err
}
