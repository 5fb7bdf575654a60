package report

import (
	"strings"
	"testing"

	"github.com/vitalog-app/vitalog/internal/analyzer"
	"github.com/vitalog-app/vitalog/internal/models"
)

func TestRenderIncludesStatsAndAdvice(t *testing.T) {
	profile := models.Profile{
		Gender: models.GenderFemale, Age: 30, HeightCm: 165, WeightKg: 60,
	}
	result := analyzer.AnalyzeWeek(profile,
		[]models.ExerciseDay{{Date: "2024-01-01", DurationMin: 30, CaloriesBurned: 200}},
		[]models.DietDay{{Date: "2024-01-01", Calories: 1800, ProteinG: 80, FatG: 60, CarbsG: 220}},
		[]models.SleepDay{{Date: "2024-01-01", DurationMin: 450, Quality: 3}},
	)

	out := Render("2024-01-01", "2024-01-07", result)

	for _, want := range []string{
		"Weekly Health Report",
		"2024-01-01",
		"Exercise",
		"Diet",
		"Sleep",
		"Advice",
		"30 min",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected report to contain %q", want)
		}
	}

	// Every advice line must appear in the output.
	for _, line := range result.OverallAdvice {
		if !strings.Contains(out, line) {
			t.Errorf("expected report to contain advice %q", line)
		}
	}
}

func TestRenderEmptyWeek(t *testing.T) {
	result := analyzer.AnalyzeWeek(models.Profile{}, nil, nil, nil)
	out := Render("2024-01-01", "2024-01-07", result)

	if !strings.Contains(out, "0 of 0") {
		t.Errorf("expected zero-day counts in empty report")
	}
	if !strings.Contains(out, "No diet data") {
		t.Errorf("expected fallback diet advice in empty report")
	}
}
