package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wayfare/internal/decision"
	"github.com/alexanderramin/wayfare/internal/domain"
)

// FormatDecision renders a decision as a boxed winner card: factor bars, the
// reasoning sentence, and an alternatives table.
func FormatDecision(dec *decision.Decision) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s  %s\n",
		Bold(dec.Winner.Name),
		Stars(dec.Winner.Rating, dec.Winner.ReviewCount),
		PriceBadge(dec.Winner.Price),
	))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Confidence:"), ScoreBadge(dec.Confidence)))
	if dec.Winner.Supports(domain.TransactionReservation) {
		b.WriteString(Dim("Takes reservations") + "\n")
	}
	b.WriteString("\n")

	b.WriteString(formatBreakdown(dec.Breakdown))

	b.WriteString("\n")
	b.WriteString(Header("Why"))
	b.WriteString("\n" + StyleFg.Render(dec.Reasoning) + "\n")

	if len(dec.Alternatives) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Alternatives"))
		b.WriteString("\n")
		rows := make([][]string, 0, len(dec.Alternatives))
		for _, alt := range dec.Alternatives {
			rows = append(rows, []string{
				StyleFg.Render(alt.Name),
				Stars(alt.Rating, alt.ReviewCount),
				PriceBadge(alt.Price),
			})
		}
		b.WriteString(RenderTable([]string{"Name", "Rating", "Price"}, rows))
	}

	return RenderBox("Decision", b.String())
}

const barSlots = 10

// formatBreakdown renders one bar line per scoring factor.
func formatBreakdown(bd decision.ScoreBreakdown) string {
	lines := []struct {
		label  string
		value  float64
		weight float64
	}{
		{"Rating", bd.Rating, bd.Weights.Rating},
		{"Price", bd.PriceMatch, bd.Weights.PriceMatch},
		{"Distance", bd.Distance, bd.Weights.Distance},
		{"Cuisine", bd.CuisineMatch, bd.Weights.CuisineMatch},
		{"Popularity", bd.Popularity, bd.Weights.Popularity},
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(fmt.Sprintf("%-11s %s %s %s\n",
			StyleFg.Render(l.label),
			scoreBar(l.value),
			ScoreColor(l.value).Render(fmt.Sprintf("%.2f", l.value)),
			Dim(fmt.Sprintf("×%.2f", l.weight)),
		))
	}
	return b.String()
}

func scoreBar(value float64) string {
	filled := int(value*barSlots + 0.5)
	if filled > barSlots {
		filled = barSlots
	}
	return ScoreColor(value).Render(strings.Repeat("█", filled)) +
		StyleDim.Render(strings.Repeat("░", barSlots-filled))
}
