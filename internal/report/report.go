package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vitalog-app/vitalog/internal/analyzer"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	goodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	adviceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			PaddingLeft(2)
)

// Render formats a weekly analysis as styled terminal text. The layout is
// stable line-oriented output so it stays readable when piped to a file.
func Render(startDate, endDate string, result analyzer.Analysis) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Weekly Health Report  %s to %s", startDate, endDate)))
	b.WriteString("\n\n")

	renderExercise(&b, result.Exercise)
	renderDiet(&b, result.Diet)
	renderSleep(&b, result.Sleep)

	b.WriteString(sectionStyle.Render("Advice"))
	b.WriteString("\n")
	for _, section := range [][]string{result.ExerciseAdvice, result.DietAdvice, result.SleepAdvice, result.OverallAdvice} {
		for _, line := range section {
			b.WriteString(adviceStyle.Render(line))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderExercise(b *strings.Builder, stats analyzer.ExerciseStats) {
	b.WriteString(sectionStyle.Render("Exercise"))
	b.WriteString("\n")
	writeStat(b, "Active days", fmt.Sprintf("%d of %d", stats.ExerciseDays, stats.TotalDays))
	writeStat(b, "Total duration", fmt.Sprintf("%d min", stats.TotalDurationMin))
	writeStat(b, "Calories burned", fmt.Sprintf("%.0f kcal", stats.TotalCalories))

	target := fmt.Sprintf("%.0f%% of %d min", stats.TargetPercentage, analyzer.WeeklyExerciseTarget)
	if stats.MeetsRecommendation {
		writeStat(b, "Weekly target", goodStyle.Render(target))
	} else {
		writeStat(b, "Weekly target", warnStyle.Render(target))
	}
	b.WriteString("\n")
}

func renderDiet(b *strings.Builder, stats analyzer.DietStats) {
	b.WriteString(sectionStyle.Render("Diet"))
	b.WriteString("\n")
	writeStat(b, "Logged days", fmt.Sprintf("%d of %d", stats.DietDays, stats.TotalDays))
	writeStat(b, "Avg calories", fmt.Sprintf("%.0f / %d kcal", stats.AvgCaloriesPerDay, stats.RecommendedCalories))
	writeStat(b, "Avg protein", fmt.Sprintf("%.1f / %d g", stats.AvgProteinPerDay, stats.RecommendedProteinG))
	writeStat(b, "Avg fat", fmt.Sprintf("%.1f / %d g", stats.AvgFatPerDay, stats.RecommendedFatG))
	writeStat(b, "Avg carbs", fmt.Sprintf("%.1f / %d g", stats.AvgCarbsPerDay, stats.RecommendedCarbsG))
	if stats.DietDays > 0 {
		writeStat(b, "Macro split", fmt.Sprintf("P %.0f%% / F %.0f%% / C %.0f%%",
			stats.ProteinRatio, stats.FatRatio, stats.CarbsRatio))
	}
	b.WriteString("\n")
}

func renderSleep(b *strings.Builder, stats analyzer.SleepStats) {
	b.WriteString(sectionStyle.Render("Sleep"))
	b.WriteString("\n")
	writeStat(b, "Logged days", fmt.Sprintf("%d of %d", stats.SleepDays, stats.TotalDays))
	writeStat(b, "Avg duration", fmt.Sprintf("%.1f h", stats.AvgDurationPerDay/60))
	writeStat(b, "Avg quality", fmt.Sprintf("%.1f / 5", stats.AvgQuality))

	target := fmt.Sprintf("%.0f%% of %.1f h", stats.PercentOfRecommended, stats.RecommendedSleepHrs)
	if stats.MeetsRecommendation {
		writeStat(b, "Nightly target", goodStyle.Render(target))
	} else {
		writeStat(b, "Nightly target", warnStyle.Render(target))
	}
	b.WriteString("\n")
}

func writeStat(b *strings.Builder, label, value string) {
	b.WriteString("  ")
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-16s", label)))
	b.WriteString(valueStyle.Render(value))
	b.WriteString("\n")
}
