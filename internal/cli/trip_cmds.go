package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/wayfare/internal/cli/formatter"
	"github.com/alexanderramin/wayfare/internal/planner"
	"github.com/alexanderramin/wayfare/internal/service"
)

// addSlotFlags registers the day/item pair shared by every command that
// targets one scheduled slot.
func addSlotFlags(fs *pflag.FlagSet, day, item *int) {
	fs.IntVar(day, "day", 0, "Day index, zero-based")
	fs.IntVar(item, "item", 0, "Item index within the day, zero-based")
}

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved itineraries",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Trips.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSummaries(list))
			return nil
		},
	}
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <itinerary-id>",
		Short: "Show one itinerary day by day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := app.Trips.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatItinerary(it))
			return nil
		},
	}
}

func newOptimizeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "optimize <itinerary-id>",
		Short: "Analyze how evenly a trip is paced",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Trips.Optimize(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOptimization(result))
			return nil
		},
	}
}

func newDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <itinerary-id>",
		Short: "Delete a saved itinerary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Trips.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted", args[0])
			return nil
		},
	}
}

func newModifyCmd(app *App) *cobra.Command {
	var (
		kind  string
		day   int
		item  int
		query string
	)

	cmd := &cobra.Command{
		Use:   "modify <itinerary-id>",
		Short: "Apply one change to a saved itinerary",
		Long: `Apply one change to a saved itinerary.

remove-activity needs --day and --item. replace-activity and change-lodging
additionally need --query, which searches venues and uses the winner as the
replacement. add-activity is only available over the HTTP API, where the new
slot's window is given explicitly.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			mod := planner.Modification{
				Kind:      planner.ModificationKind(kind),
				DayIndex:  day,
				ItemIndex: item,
			}

			switch mod.Kind {
			case planner.ModReplaceActivity, planner.ModChangeLodging:
				if query == "" {
					return fmt.Errorf("%s needs --query to pick the new venue", kind)
				}
				resp, err := app.Decisions.Decide(ctx, service.DecideRequest{Query: query})
				if err != nil {
					return err
				}
				winner := resp.Decision.Winner
				mod.Candidate = &winner
			case planner.ModRemoveActivity:
			default:
				return fmt.Errorf("unsupported kind %q (use remove-activity, replace-activity, change-lodging)", kind)
			}

			it, err := app.Trips.Modify(ctx, args[0], mod)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatItinerary(it))
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Modification kind (remove-activity, replace-activity, change-lodging)")
	addSlotFlags(cmd.Flags(), &day, &item)
	cmd.Flags().StringVar(&query, "query", "", "Venue search query for the replacement")
	_ = cmd.MarkFlagRequired("kind")

	return cmd
}

func newBookCmd(app *App) *cobra.Command {
	var (
		day   int
		item  int
		notes string
	)

	cmd := &cobra.Command{
		Use:   "book <itinerary-id>",
		Short: "Book one scheduled slot with the booking collaborator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := app.Bookings.BookItem(context.Background(), service.BookItemRequest{
				ItineraryID: args[0],
				DayIndex:    day,
				ItemIndex:   item,
				Notes:       notes,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				formatter.Bold("Confirmed:"),
				fmt.Sprintf("%s (%s)", conf.ConfirmationID, conf.Status),
			)
			return nil
		},
	}

	addSlotFlags(cmd.Flags(), &day, &item)
	cmd.Flags().StringVar(&notes, "notes", "", "Notes passed to the venue")

	return cmd
}
