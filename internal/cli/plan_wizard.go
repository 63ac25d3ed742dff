package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/wayfare/internal/cli/formatter"
	"github.com/alexanderramin/wayfare/internal/domain"
)

const dateLayout = "2006-01-02"

// wayfareHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func wayfareHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func styleOptions() []huh.Option[string] {
	styles := []domain.TravelStyle{
		domain.StyleRelaxed,
		domain.StyleBalanced,
		domain.StylePacked,
		domain.StyleAdventure,
		domain.StyleCultural,
		domain.StyleGastronomy,
	}
	opts := make([]huh.Option[string], 0, len(styles))
	for _, s := range styles {
		opts = append(opts, huh.NewOption(string(s), string(s)))
	}
	return opts
}

// runPlanWizard collects a trip request interactively.
func runPlanWizard() (domain.TripRequest, error) {
	var (
		destination string
		start, end  string
		group       string
		budget      string
		style       = string(domain.StyleBalanced)
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Destination").
				Placeholder("Lisbon").
				Value(&destination).
				Validate(validateRequired),
			huh.NewInput().
				Title("First day (YYYY-MM-DD)").
				Placeholder("2026-06-10").
				Value(&start).
				Validate(validateDate),
			huh.NewInput().
				Title("Last day (YYYY-MM-DD)").
				Placeholder("2026-06-12").
				Value(&end).
				Validate(validateDate),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Group size").
				Placeholder("2").
				Value(&group).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Total budget (blank for none)").
				Placeholder("1200").
				Value(&budget).
				Validate(validateOptionalFloat),
			huh.NewSelect[string]().
				Title("Travel style").
				Options(styleOptions()...).
				Value(&style),
		),
	).WithTheme(wayfareHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return domain.TripRequest{}, err
	}

	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return domain.TripRequest{}, fmt.Errorf("start date: %w", err)
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return domain.TripRequest{}, fmt.Errorf("end date: %w", err)
	}
	groupSize, _ := strconv.Atoi(group)
	total := 0.0
	if budget != "" {
		total, _ = strconv.ParseFloat(budget, 64)
	}

	return domain.TripRequest{
		Destination: destination,
		StartDate:   startDate,
		EndDate:     endDate,
		GroupSize:   groupSize,
		Budget:      total,
		Currency:    "EUR",
		Preferences: domain.PreferenceProfile{Style: domain.TravelStyle(style)},
	}, nil
}
