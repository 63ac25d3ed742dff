package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/wayfare/internal/cli/formatter"
	"github.com/alexanderramin/wayfare/internal/domain"
)

func newPlanCmd(app *App) *cobra.Command {
	var (
		destination string
		start, end  string
		group       int
		budget      float64
		currency    string
		style       string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a multi-day itinerary",
		RunE: func(cmd *cobra.Command, args []string) error {
			var req domain.TripRequest
			if destination == "" && app.interactive() {
				collected, err := runPlanWizard()
				if err != nil {
					return err
				}
				req = collected
			} else {
				startDate, err := time.Parse(dateLayout, start)
				if err != nil {
					return fmt.Errorf("start date: %w", err)
				}
				endDate, err := time.Parse(dateLayout, end)
				if err != nil {
					return fmt.Errorf("end date: %w", err)
				}
				req = domain.TripRequest{
					Destination: destination,
					StartDate:   startDate,
					EndDate:     endDate,
					GroupSize:   group,
					Budget:      budget,
					Currency:    currency,
					Preferences: domain.PreferenceProfile{Style: domain.TravelStyle(style)},
				}
			}

			it, err := app.Trips.Plan(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatItinerary(it))
			return nil
		},
	}

	cmd.Flags().StringVar(&destination, "destination", "", "Trip destination (omit for the wizard)")
	cmd.Flags().StringVar(&start, "start", "", "First day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Last day (YYYY-MM-DD)")
	cmd.Flags().IntVar(&group, "group", 2, "Group size")
	cmd.Flags().Float64Var(&budget, "budget", 0, "Total trip budget (0 = unconstrained)")
	cmd.Flags().StringVar(&currency, "currency", "EUR", "Budget currency code")
	cmd.Flags().StringVar(&style, "style", "balanced", "Travel style (relaxed, balanced, packed, adventure, cultural, gastronomy)")

	return cmd
}
