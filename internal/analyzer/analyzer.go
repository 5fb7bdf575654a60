package analyzer

import (
	"fmt"
	"sort"

	"github.com/vitalog-app/vitalog/internal/models"
)

// Recommended daily intake defaults used when no profile is available.
const (
	DefaultCalories = 2000
	DefaultProteinG = 65
	DefaultSleepHrs = 8.0

	// WHO weekly moderate-exercise recommendation in minutes.
	WeeklyExerciseTarget = 150
)

// ExerciseStats summarizes one week of exercise records.
type ExerciseStats struct {
	TotalDays             int
	ExerciseDays          int
	ExercisePercentage    float64
	TotalDurationMin      int
	TotalCalories         float64
	AvgDurationPerDay     float64
	AvgDurationPerExoDay  float64
	AvgCaloriesPerDay     float64
	TargetPercentage      float64
	MeetsRecommendation   bool
}

// DietStats summarizes one week of diet records against recommended intake.
type DietStats struct {
	TotalDays           int
	DietDays            int
	TotalCalories       float64
	TotalProteinG       float64
	TotalFatG           float64
	TotalCarbsG         float64
	AvgCaloriesPerDay   float64
	AvgProteinPerDay    float64
	AvgFatPerDay        float64
	AvgCarbsPerDay      float64
	RecommendedCalories int
	RecommendedProteinG int
	RecommendedFatG     int
	RecommendedCarbsG   int
	ProteinRatio        float64
	FatRatio            float64
	CarbsRatio          float64
	CaloriesPercentage  float64
	ProteinPercentage   float64
	FatPercentage       float64
	CarbsPercentage     float64
}

// SleepStats summarizes one week of sleep records.
type SleepStats struct {
	TotalDays             int
	SleepDays             int
	SleepPercentage       float64
	TotalDurationMin      float64
	AvgDurationPerDay     float64
	AvgDurationPerSlpDay  float64
	AvgQuality            float64
	RecommendedSleepHrs   float64
	PercentOfRecommended  float64
	MeetsRecommendation   bool
}

// Analysis is the full weekly report: statistics per aspect plus the
// generated advice strings.
type Analysis struct {
	Dates          []string
	Exercise       ExerciseStats
	Diet           DietStats
	Sleep          SleepStats
	ExerciseAdvice []string
	DietAdvice     []string
	SleepAdvice    []string
	OverallAdvice  []string
}

// AnalyzeWeek computes weekly statistics and advice from per-day aggregates.
// It is a pure function: no storage or clock access. The profile may be the
// zero value, in which case default recommendations apply.
func AnalyzeWeek(profile models.Profile, exercise []models.ExerciseDay, diet []models.DietDay, sleep []models.SleepDay) Analysis {
	dateSet := map[string]bool{}
	for _, day := range exercise {
		dateSet[day.Date] = true
	}
	for _, day := range diet {
		dateSet[day.Date] = true
	}
	for _, day := range sleep {
		dateSet[day.Date] = true
	}
	dates := make([]string, 0, len(dateSet))
	for date := range dateSet {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	totalDays := len(dates)
	exerciseStats := analyzeExercise(exercise, totalDays)
	dietStats := analyzeDiet(profile, diet, totalDays)
	sleepStats := analyzeSleep(profile, sleep, totalDays)

	return Analysis{
		Dates:          dates,
		Exercise:       exerciseStats,
		Diet:           dietStats,
		Sleep:          sleepStats,
		ExerciseAdvice: exerciseAdvice(exerciseStats),
		DietAdvice:     dietAdvice(dietStats),
		SleepAdvice:    sleepAdvice(sleepStats),
		OverallAdvice:  overallAdvice(exerciseStats, dietStats, sleepStats),
	}
}

func analyzeExercise(days []models.ExerciseDay, totalDays int) ExerciseStats {
	stats := ExerciseStats{
		TotalDays:    totalDays,
		ExerciseDays: len(days),
	}
	for _, day := range days {
		stats.TotalDurationMin += day.DurationMin
		stats.TotalCalories += day.CaloriesBurned
	}

	if totalDays > 0 {
		stats.ExercisePercentage = float64(stats.ExerciseDays) / float64(totalDays) * 100
		stats.AvgDurationPerDay = float64(stats.TotalDurationMin) / float64(totalDays)
		stats.AvgCaloriesPerDay = stats.TotalCalories / float64(totalDays)
	}
	if stats.ExerciseDays > 0 {
		stats.AvgDurationPerExoDay = float64(stats.TotalDurationMin) / float64(stats.ExerciseDays)
	}

	stats.TargetPercentage = float64(stats.TotalDurationMin) / WeeklyExerciseTarget * 100
	stats.MeetsRecommendation = stats.TargetPercentage >= 100
	return stats
}

func analyzeDiet(profile models.Profile, days []models.DietDay, totalDays int) DietStats {
	stats := DietStats{
		TotalDays: totalDays,
		DietDays:  len(days),
	}
	for _, day := range days {
		stats.TotalCalories += day.Calories
		stats.TotalProteinG += day.ProteinG
		stats.TotalFatG += day.FatG
		stats.TotalCarbsG += day.CarbsG
	}

	if totalDays > 0 {
		stats.AvgCaloriesPerDay = stats.TotalCalories / float64(totalDays)
		stats.AvgProteinPerDay = stats.TotalProteinG / float64(totalDays)
		stats.AvgFatPerDay = stats.TotalFatG / float64(totalDays)
		stats.AvgCarbsPerDay = stats.TotalCarbsG / float64(totalDays)
	}

	stats.RecommendedCalories = RecommendedCalories(profile)
	stats.RecommendedProteinG = RecommendedProtein(profile)
	stats.RecommendedFatG = int(float64(stats.RecommendedCalories) * 0.3 / 9)
	stats.RecommendedCarbsG = int(float64(stats.RecommendedCalories) * 0.55 / 4)

	// Macro ratios are shares of calories from macros, not of total intake.
	macroCalories := stats.TotalProteinG*4 + stats.TotalFatG*9 + stats.TotalCarbsG*4
	if macroCalories > 0 {
		stats.ProteinRatio = stats.TotalProteinG * 4 / macroCalories * 100
		stats.FatRatio = stats.TotalFatG * 9 / macroCalories * 100
		stats.CarbsRatio = stats.TotalCarbsG * 4 / macroCalories * 100
	}

	if stats.RecommendedCalories > 0 {
		stats.CaloriesPercentage = stats.AvgCaloriesPerDay / float64(stats.RecommendedCalories) * 100
	}
	if stats.RecommendedProteinG > 0 {
		stats.ProteinPercentage = stats.AvgProteinPerDay / float64(stats.RecommendedProteinG) * 100
	}
	if stats.RecommendedFatG > 0 {
		stats.FatPercentage = stats.AvgFatPerDay / float64(stats.RecommendedFatG) * 100
	}
	if stats.RecommendedCarbsG > 0 {
		stats.CarbsPercentage = stats.AvgCarbsPerDay / float64(stats.RecommendedCarbsG) * 100
	}
	return stats
}

func analyzeSleep(profile models.Profile, days []models.SleepDay, totalDays int) SleepStats {
	stats := SleepStats{
		TotalDays: totalDays,
		SleepDays: len(days),
	}
	var qualitySum float64
	for _, day := range days {
		stats.TotalDurationMin += day.DurationMin
		qualitySum += day.Quality
	}

	if totalDays > 0 {
		stats.SleepPercentage = float64(stats.SleepDays) / float64(totalDays) * 100
		stats.AvgDurationPerDay = stats.TotalDurationMin / float64(totalDays)
	}
	if stats.SleepDays > 0 {
		stats.AvgDurationPerSlpDay = stats.TotalDurationMin / float64(stats.SleepDays)
		stats.AvgQuality = qualitySum / float64(stats.SleepDays)
	}

	stats.RecommendedSleepHrs = RecommendedSleep(profile)
	if stats.RecommendedSleepHrs > 0 {
		stats.PercentOfRecommended = stats.AvgDurationPerDay / (stats.RecommendedSleepHrs * 60) * 100
		stats.MeetsRecommendation = stats.AvgDurationPerDay >= stats.RecommendedSleepHrs*60
	}
	return stats
}

// RecommendedCalories estimates daily energy needs with the Harris-Benedict
// equation at a moderate activity level (PAL 1.55). An incomplete profile
// falls back to a flat default.
func RecommendedCalories(p models.Profile) int {
	if p.Age <= 0 || p.HeightCm <= 0 || p.WeightKg <= 0 {
		return DefaultCalories
	}

	var bmr float64
	if p.Gender == models.GenderMale {
		bmr = 88.362 + 13.397*p.WeightKg + 4.799*p.HeightCm - 5.677*float64(p.Age)
	} else {
		bmr = 447.593 + 9.247*p.WeightKg + 3.098*p.HeightCm - 4.330*float64(p.Age)
	}
	return int(bmr * 1.55)
}

// RecommendedProtein returns the daily protein target in grams, 1.6 g per
// kilogram of body weight.
func RecommendedProtein(p models.Profile) int {
	if p.WeightKg <= 0 {
		return DefaultProteinG
	}
	return int(p.WeightKg * 1.6)
}

// RecommendedSleep returns the nightly sleep target in hours by age band.
func RecommendedSleep(p models.Profile) float64 {
	if p.Age <= 0 {
		return DefaultSleepHrs
	}
	switch {
	case p.Age < 18:
		return 9
	case p.Age < 65:
		return 8
	default:
		return 7.5
	}
}

func exerciseAdvice(stats ExerciseStats) []string {
	var advice []string

	if stats.MeetsRecommendation {
		advice = append(advice, "You met the WHO recommendation of at least 150 minutes of moderate exercise this week. Keep it up.")
	} else {
		switch {
		case stats.TargetPercentage < 30:
			advice = append(advice, "Your exercise time this week was far below the recommended amount. Build up gradually, starting with a 15-30 minute daily walk.")
		case stats.TargetPercentage < 60:
			advice = append(advice, "Your exercise time this week was under 60% of the recommended amount. Try to fit in moderate activity most days, such as brisk walking or cycling.")
		default:
			advice = append(advice, fmt.Sprintf("Your exercise time this week reached %.1f%% of the recommended amount. A little more effort will get you to 150 minutes.", stats.TargetPercentage))
		}
	}

	if stats.ExerciseDays == 0 {
		advice = append(advice, "No exercise was recorded this week. Aim for moderate aerobic activity on at least 3 days a week.")
	} else if stats.ExerciseDays < 3 {
		advice = append(advice, fmt.Sprintf("You exercised on only %d day(s) this week. Spreading activity over 3-5 days helps build the habit.", stats.ExerciseDays))
	}

	if stats.AvgDurationPerDay < 10 {
		advice = append(advice, "Your average daily exercise time is very short. Sessions of at least 10 minutes bring clearer health benefits.")
	} else if stats.AvgDurationPerDay < 30 {
		advice = append(advice, "Your average daily exercise time is under 30 minutes. Work more movement into your routine, like walking to work or taking the stairs.")
	}

	return advice
}

func dietAdvice(stats DietStats) []string {
	var advice []string

	if stats.CaloriesPercentage == 0 {
		advice = append(advice, "No diet data was recorded this week. Logging what you eat is the first step to improving your nutrition.")
		return advice
	}

	switch {
	case stats.CaloriesPercentage > 110:
		advice = append(advice, fmt.Sprintf("Your average daily calorie intake exceeds the recommendation by about %.1f%%. A sustained surplus can lead to weight gain.", stats.CaloriesPercentage-100))
	case stats.CaloriesPercentage < 80:
		advice = append(advice, fmt.Sprintf("Your average daily calorie intake is about %.1f%% below the recommendation. A sustained deficit can affect energy and metabolism.", 100-stats.CaloriesPercentage))
	default:
		advice = append(advice, "Your average daily calorie intake is within the recommended range, which helps maintain a healthy weight.")
	}

	if stats.ProteinPercentage < 80 {
		advice = append(advice, fmt.Sprintf("Your protein intake is low, at only %.1f%% of the recommended amount. Add lean meat, fish, legumes, or dairy.", stats.ProteinPercentage))
	} else if stats.ProteinRatio < 10 {
		advice = append(advice, fmt.Sprintf("Protein makes up a low share of your diet (%.1f%%). It matters for muscle maintenance and satiety.", stats.ProteinRatio))
	} else if stats.ProteinRatio > 35 {
		advice = append(advice, fmt.Sprintf("Protein makes up a high share of your diet (%.1f%%). A very high share can crowd out other nutrients.", stats.ProteinRatio))
	}

	if stats.FatRatio < 15 {
		advice = append(advice, fmt.Sprintf("Your fat intake share is low (%.1f%%). Healthy fats matter for absorbing fat-soluble vitamins.", stats.FatRatio))
	} else if stats.FatRatio > 40 {
		advice = append(advice, fmt.Sprintf("Your fat intake share is high (%.1f%%). Prefer unsaturated fats like olive oil and nuts over saturated and trans fats.", stats.FatRatio))
	}

	if stats.CarbsRatio < 40 {
		advice = append(advice, fmt.Sprintf("Your carbohydrate share is low (%.1f%%). Complex carbohydrates like whole grains provide lasting energy.", stats.CarbsRatio))
	} else if stats.CarbsRatio > 70 {
		advice = append(advice, fmt.Sprintf("Your carbohydrate share is high (%.1f%%). Cut back on refined carbohydrates like white bread and sweets.", stats.CarbsRatio))
	}

	advice = append(advice, "A balanced diet draws roughly 10-35% of calories from protein, 20-35% from fat, and 45-65% from carbohydrates.")
	return advice
}

func sleepAdvice(stats SleepStats) []string {
	var advice []string

	if stats.SleepDays == 0 {
		advice = append(advice, "No sleep data was recorded this week. A regular sleep routine is essential for physical and mental health.")
		return advice
	}

	switch {
	case stats.PercentOfRecommended < 80:
		advice = append(advice, fmt.Sprintf("Your average sleep is short, at only %.1f%% of the recommended amount. Chronic sleep debt affects cognition, mood, and immunity.", stats.PercentOfRecommended))
		advice = append(advice, fmt.Sprintf("Adults typically need 7-9 hours of sleep; your average is about %.1f hours.", stats.AvgDurationPerDay/60))
	case stats.PercentOfRecommended > 120:
		advice = append(advice, "Your average sleep exceeds the recommendation. Consistently long sleep can also come with health issues; keep a regular schedule.")
	default:
		advice = append(advice, "Your sleep duration is within the healthy range, which supports recovery and cognition.")
	}

	switch {
	case stats.AvgQuality < 2.5:
		advice = append(advice, "Your sleep quality score is low. Try a consistent schedule, no screens before bed, and a comfortable sleep environment.")
	case stats.AvgQuality < 3.5:
		advice = append(advice, "Your sleep quality score is moderate. Adjusting room temperature, reducing noise, or winding down before bed can help.")
	default:
		advice = append(advice, "Your sleep quality score is good. Keep up the healthy sleep habits.")
	}

	if float64(stats.SleepDays) < float64(stats.TotalDays)*0.8 {
		advice = append(advice, fmt.Sprintf("Sleep was recorded on only %d day(s) this week. Consistent sleep timing matters, weekends included.", stats.SleepDays))
	}

	return advice
}

func overallAdvice(exercise ExerciseStats, diet DietStats, sleep SleepStats) []string {
	var advice []string

	hasDietData := diet.DietDays > 0
	if exercise.MeetsRecommendation && sleep.MeetsRecommendation && hasDietData {
		advice = append(advice, "Overall you are doing well across exercise, diet, and sleep. A balanced routine like this supports long-term health.")
	} else {
		advice = append(advice, "A healthy lifestyle balances exercise, diet, and sleep. Based on your data, focus on the following:")
		if !exercise.MeetsRecommendation {
			advice = append(advice, "- Move more: set a weekly exercise goal and build up frequency and duration with activities you enjoy.")
		}
		if !hasDietData {
			advice = append(advice, "- Log your meals: knowing your eating pattern is the first step to better nutrition.")
		} else if diet.CaloriesPercentage > 110 {
			advice = append(advice, "- Adjust your diet: rein in total calories, eat more vegetables and fruit, and cut high-sugar, high-fat foods.")
		}
		if !sleep.MeetsRecommendation {
			advice = append(advice, "- Improve sleep habits: keep a regular schedule, make the bedroom comfortable, and avoid stimulation before bed.")
		}
	}

	var missing []string
	if exercise.ExerciseDays < exercise.TotalDays {
		missing = append(missing, "exercise")
	}
	if diet.DietDays < diet.TotalDays {
		missing = append(missing, "diet")
	}
	if sleep.SleepDays < sleep.TotalDays {
		missing = append(missing, "sleep")
	}
	if len(missing) > 0 {
		advice = append(advice, fmt.Sprintf("Your %s records are incomplete this week. Consistent logging makes the analysis more accurate.", joinWords(missing)))
	}

	advice = append(advice, "Set long-term goals: regular activity, a balanced diet, and enough quality sleep compound into significant health benefits over time.")
	return advice
}

func joinWords(words []string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	case 2:
		return words[0] + " and " + words[1]
	default:
		result := ""
		for i, w := range words {
			switch i {
			case 0:
				result = w
			case len(words) - 1:
				result += ", and " + w
			default:
				result += ", " + w
			}
		}
		return result
	}
}
