package analyzer

import (
	"math"
	"strings"
	"testing"

	"github.com/vitalog-app/vitalog/internal/models"
)

func testProfile() models.Profile {
	return models.Profile{
		UserID:   1,
		Name:     "Ada",
		Gender:   models.GenderFemale,
		Age:      30,
		HeightCm: 165,
		WeightKg: 60,
	}
}

func TestRecommendedCalories(t *testing.T) {
	// Harris-Benedict, female: 447.593 + 9.247*60 + 3.098*165 - 4.330*30,
	// then a 1.55 activity multiplier.
	got := RecommendedCalories(testProfile())
	if got != 2144 {
		t.Errorf("expected 2144 kcal for female profile, got %d", got)
	}

	male := models.Profile{Gender: models.GenderMale, Age: 40, HeightCm: 180, WeightKg: 80}
	if got := RecommendedCalories(male); got != 2785 {
		t.Errorf("expected 2785 kcal for male profile, got %d", got)
	}

	if got := RecommendedCalories(models.Profile{}); got != DefaultCalories {
		t.Errorf("expected default %d kcal without profile, got %d", DefaultCalories, got)
	}
}

func TestRecommendedProtein(t *testing.T) {
	if got := RecommendedProtein(testProfile()); got != 96 {
		t.Errorf("expected 96 g protein for 60 kg, got %d", got)
	}
	if got := RecommendedProtein(models.Profile{}); got != DefaultProteinG {
		t.Errorf("expected default %d g without profile, got %d", DefaultProteinG, got)
	}
}

func TestRecommendedSleep(t *testing.T) {
	cases := []struct {
		age  int
		want float64
	}{
		{16, 9},
		{30, 8},
		{70, 7.5},
		{0, DefaultSleepHrs},
	}
	for _, tc := range cases {
		if got := RecommendedSleep(models.Profile{Age: tc.age}); got != tc.want {
			t.Errorf("age %d: expected %.1f h, got %.1f", tc.age, tc.want, got)
		}
	}
}

func TestExerciseFarBelowTarget(t *testing.T) {
	result := AnalyzeWeek(testProfile(), []models.ExerciseDay{
		{Date: "2024-01-01", DurationMin: 30, CaloriesBurned: 200},
	}, nil, nil)

	if result.Exercise.TargetPercentage != 20 {
		t.Errorf("expected 20%% of target, got %.1f", result.Exercise.TargetPercentage)
	}
	if result.Exercise.MeetsRecommendation {
		t.Error("30 minutes must not meet the weekly recommendation")
	}
	if len(result.ExerciseAdvice) == 0 || !strings.Contains(result.ExerciseAdvice[0], "far below") {
		t.Errorf("expected far-below advice, got %v", result.ExerciseAdvice)
	}
}

func TestExerciseMeetsTarget(t *testing.T) {
	result := AnalyzeWeek(testProfile(), []models.ExerciseDay{
		{Date: "2024-01-01", DurationMin: 50},
		{Date: "2024-01-03", DurationMin: 50},
		{Date: "2024-01-05", DurationMin: 50},
	}, nil, nil)

	if !result.Exercise.MeetsRecommendation {
		t.Error("150 minutes must meet the weekly recommendation")
	}
	if result.Exercise.TargetPercentage != 100 {
		t.Errorf("expected 100%% of target, got %.1f", result.Exercise.TargetPercentage)
	}
	if len(result.ExerciseAdvice) == 0 || !strings.Contains(result.ExerciseAdvice[0], "Keep it up") {
		t.Errorf("expected congratulation, got %v", result.ExerciseAdvice)
	}
}

func TestMacroRatiosSumToHundred(t *testing.T) {
	result := AnalyzeWeek(testProfile(), nil, []models.DietDay{
		{Date: "2024-01-01", Calories: 2000, ProteinG: 90, FatG: 70, CarbsG: 250},
		{Date: "2024-01-02", Calories: 1800, ProteinG: 80, FatG: 60, CarbsG: 230},
	}, nil)

	sum := result.Diet.ProteinRatio + result.Diet.FatRatio + result.Diet.CarbsRatio
	if math.Abs(sum-100) > 1e-9 {
		t.Errorf("macro ratios should sum to 100, got %.6f", sum)
	}
}

func TestSleepStats(t *testing.T) {
	result := AnalyzeWeek(testProfile(), nil, nil, []models.SleepDay{
		{Date: "2024-01-01", DurationMin: 480, Quality: 4},
		{Date: "2024-01-02", DurationMin: 480, Quality: 4},
	})

	if result.Sleep.AvgDurationPerDay != 480 {
		t.Errorf("expected 480 min average, got %.1f", result.Sleep.AvgDurationPerDay)
	}
	if !result.Sleep.MeetsRecommendation {
		t.Error("8 hours must meet the adult recommendation")
	}
	if result.Sleep.AvgQuality != 4 {
		t.Errorf("expected quality 4, got %.1f", result.Sleep.AvgQuality)
	}
}

func TestEmptyWeek(t *testing.T) {
	result := AnalyzeWeek(models.Profile{}, nil, nil, nil)

	if result.Exercise.TotalDurationMin != 0 || result.Diet.TotalCalories != 0 || result.Sleep.TotalDurationMin != 0 {
		t.Error("expected zero totals for an empty week")
	}
	if len(result.Dates) != 0 {
		t.Errorf("expected no dates, got %v", result.Dates)
	}
	if len(result.DietAdvice) != 1 || !strings.Contains(result.DietAdvice[0], "No diet data") {
		t.Errorf("expected diet fallback advice, got %v", result.DietAdvice)
	}
	if len(result.SleepAdvice) != 1 || !strings.Contains(result.SleepAdvice[0], "No sleep data") {
		t.Errorf("expected sleep fallback advice, got %v", result.SleepAdvice)
	}
	found := false
	for _, line := range result.ExerciseAdvice {
		if strings.Contains(line, "No exercise was recorded") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected no-exercise advice, got %v", result.ExerciseAdvice)
	}
}

func TestDatesAreUnionOfAspects(t *testing.T) {
	result := AnalyzeWeek(testProfile(),
		[]models.ExerciseDay{{Date: "2024-01-02", DurationMin: 20}},
		[]models.DietDay{{Date: "2024-01-01", Calories: 1800}},
		[]models.SleepDay{{Date: "2024-01-02", DurationMin: 420, Quality: 3}},
	)

	want := []string{"2024-01-01", "2024-01-02"}
	if len(result.Dates) != len(want) {
		t.Fatalf("expected %v, got %v", want, result.Dates)
	}
	for i := range want {
		if result.Dates[i] != want[i] {
			t.Errorf("expected %v, got %v", want, result.Dates)
		}
	}
	if result.Exercise.TotalDays != 2 {
		t.Errorf("averages must divide by the union of days, got %d", result.Exercise.TotalDays)
	}
}

func TestOverestimatedCaloriesAdvice(t *testing.T) {
	// 2144 recommended; 2600 average is roughly 121%.
	result := AnalyzeWeek(testProfile(), nil, []models.DietDay{
		{Date: "2024-01-01", Calories: 2600, ProteinG: 100, FatG: 90, CarbsG: 300},
	}, nil)

	if result.Diet.CaloriesPercentage <= 110 {
		t.Fatalf("expected surplus percentage, got %.1f", result.Diet.CaloriesPercentage)
	}
	if len(result.DietAdvice) == 0 || !strings.Contains(result.DietAdvice[0], "exceeds the recommendation") {
		t.Errorf("expected surplus advice, got %v", result.DietAdvice)
	}
}
