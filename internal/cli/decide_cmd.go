package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/wayfare/internal/cli/formatter"
	"github.com/alexanderramin/wayfare/internal/domain"
	"github.com/alexanderramin/wayfare/internal/importer"
	"github.com/alexanderramin/wayfare/internal/service"
)

func newDecideCmd(app *App) *cobra.Command {
	var (
		price    string
		cuisines []string
		lat, lon float64
		poolPath string
	)

	cmd := &cobra.Command{
		Use:   "decide [query]",
		Short: "Pick the best venue for a free-text request",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := service.DecideRequest{}
			if len(args) > 0 {
				req.Query = args[0]
			}
			if price != "" {
				if !domain.ValidPriceBands[price] {
					return fmt.Errorf("unknown price band %q (use free, $, $$, $$$, $$$$)", price)
				}
				req.Profile.Price = domain.PriceBand(price)
			}
			req.Profile.Cuisines = cuisines
			if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lon") {
				loc := domain.Coordinates{Lat: lat, Lon: lon}
				if err := loc.Validate(); err != nil {
					return err
				}
				req.Location = &loc
			}
			if poolPath != "" {
				pool, err := importer.LoadPool(poolPath)
				if err != nil {
					return err
				}
				if errs := importer.ValidatePool(pool); len(errs) > 0 {
					return fmt.Errorf("pool file %s: %w", poolPath, errors.Join(errs...))
				}
				req.Candidates = importer.Convert(pool)
			}
			if req.Query == "" && req.Profile.Price == "" && len(cuisines) == 0 && len(req.Candidates) == 0 {
				return fmt.Errorf("nothing to decide on: give a query, preference flags, or --pool")
			}

			resp, err := app.Decisions.Decide(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDecision(resp.Decision))
			return nil
		},
	}

	cmd.Flags().StringVar(&price, "price", "", "Desired price band (free, $, $$, $$$, $$$$)")
	cmd.Flags().StringSliceVar(&cuisines, "cuisine", nil, "Desired cuisine tags (repeatable)")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Search latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "Search longitude")
	cmd.Flags().StringVar(&poolPath, "pool", "", "JSON venue pool file; skips the venue search")

	return cmd
}
