package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/wayfare/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// HumanDate returns an absolute date such as "Wed, Jun 10".
func HumanDate(t time.Time) string {
	return t.Format("Mon, Jan 2")
}

// Money formats an amount with its currency code, dropping cents when whole.
func Money(amount float64, currency string) string {
	if currency == "" {
		currency = "USD"
	}
	if amount == float64(int64(amount)) {
		return fmt.Sprintf("%d %s", int64(amount), currency)
	}
	return fmt.Sprintf("%.2f %s", amount, currency)
}

// Window renders a time window dimmed, e.g. "08:00-09:00".
func Window(w domain.TimeWindow) string {
	return StyleDim.Render(w.String())
}

// CategoryBadge returns a colored label for an item category.
func CategoryBadge(cat domain.ItemCategory) string {
	switch cat {
	case domain.CategoryMeal:
		return StyleYellow.Render("meal")
	case domain.CategoryActivity:
		return StyleBlue.Render("activity")
	case domain.CategoryLodging:
		return StylePurple.Render("lodging")
	default:
		return StyleDim.Render(string(cat))
	}
}

// PriceBadge renders a price band, dimming the unknowns.
func PriceBadge(band domain.PriceBand) string {
	switch band {
	case "", domain.PriceUnknown:
		return StyleDim.Render("n/a")
	case domain.PriceFree:
		return StyleGreen.Render("free")
	default:
		return StyleFg.Render(string(band))
	}
}

// Stars renders a rating like "4.6★ (1.2k)".
func Stars(rating float64, reviews int) string {
	count := fmt.Sprintf("%d", reviews)
	if reviews >= 1000 {
		count = fmt.Sprintf("%.1fk", float64(reviews)/1000)
	}
	return fmt.Sprintf("%s %s", StyleFg.Render(fmt.Sprintf("%.1f★", rating)), Dim("("+count+")"))
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
