package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wayfare/internal/domain"
	"github.com/alexanderramin/wayfare/internal/repository"
)

// FormatItinerary renders a full day-by-day schedule.
func FormatItinerary(it *domain.TravelItinerary) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(it.Name), TruncID(it.ID)))
	b.WriteString(fmt.Sprintf("%s %s  %s %s\n",
		Dim("Total:"),
		StyleGreen.Render(Money(it.TotalCost, it.Request.Currency)),
		Dim("Group:"),
		StyleFg.Render(fmt.Sprintf("%d", it.Request.GroupSize)),
	))

	for i, day := range it.Days {
		b.WriteString("\n")
		header := fmt.Sprintf("Day %d · %s", i+1, HumanDate(day.Date))
		b.WriteString(Header(header))
		b.WriteString("\n")
		for _, item := range day.Items {
			b.WriteString(fmt.Sprintf("  %s  %s %s  %s\n",
				Window(item.Window),
				CategoryBadge(item.Category),
				StyleFg.Render(item.Name),
				Dim(Money(item.Cost, it.Request.Currency)),
			))
		}
		costLine := fmt.Sprintf("  %s %s", Dim("Day cost:"), Money(day.Cost, it.Request.Currency))
		if day.OverBudget {
			costLine += "  " + StyleYellow.Render("over budget")
		}
		b.WriteString(costLine + "\n")
	}

	if len(it.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range it.Warnings {
			b.WriteString(StyleYellow.Render("  WARNING: "+w) + "\n")
		}
	}

	return RenderBox("Itinerary", b.String())
}

// FormatSummaries renders the itinerary listing as a table.
func FormatSummaries(list []repository.ItinerarySummary) string {
	if len(list) == 0 {
		return Dim("No itineraries yet. Try: wayfare plan") + "\n"
	}

	rows := make([][]string, 0, len(list))
	for _, s := range list {
		rows = append(rows, []string{
			TruncID(s.ID),
			StyleFg.Render(s.Name),
			StyleFg.Render(s.Destination),
			StyleBlue.Render(fmt.Sprintf("%d", s.Days)),
			StyleGreen.Render(Money(s.TotalCost, "")),
			Dim(s.UpdatedAt.Format("Jan 2 15:04")),
		})
	}
	return RenderTable([]string{"ID", "Name", "Destination", "Days", "Cost", "Updated"}, rows)
}

// FormatOptimization renders a pacing report.
func FormatOptimization(result *domain.OptimizationResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n",
		Dim("Balance:"),
		ScoreBadge(result.BalanceScore),
	))

	if len(result.Suggestions) == 0 {
		b.WriteString("\n" + StyleGreen.Render("The plan is evenly paced.") + "\n")
	} else {
		b.WriteString("\n")
		for _, s := range result.Suggestions {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				StyleYellow.Render(fmt.Sprintf("Day %d:", s.DayIndex+1)),
				StyleFg.Render(s.Rationale),
			))
		}
	}

	return RenderBox("Pacing", b.String())
}
