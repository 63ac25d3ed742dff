// Package cli implements the wayfare command tree: one-shot decisions, trip
// planning, itinerary management, bookings, and the API server.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/wayfare/internal/httpapi"
	"github.com/alexanderramin/wayfare/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Decisions service.DecisionService
	Trips     service.TripService
	Bookings  service.BookingService

	// API backs the serve command.
	API *httpapi.Server

	// IsInteractive reports whether stdin is a terminal; wizards and the
	// browser only start on interactive sessions.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "wayfare" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "wayfare",
		Short: "Venue decisions and multi-day trip planning",
	}

	root.AddCommand(
		newDecideCmd(app),
		newPlanCmd(app),
		newListCmd(app),
		newShowCmd(app),
		newOptimizeCmd(app),
		newModifyCmd(app),
		newDeleteCmd(app),
		newBookCmd(app),
		newBrowseCmd(app),
		newServeCmd(app),
	)

	return root
}
