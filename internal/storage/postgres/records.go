package postgres

import (
	"fmt"
	"time"

	"github.com/vitalog-app/vitalog/internal/constants"
	"github.com/vitalog-app/vitalog/internal/models"
	"github.com/vitalog-app/vitalog/internal/utils"
)

func (s *Store) AddExercise(entry models.ExerciseEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		INSERT INTO exercise_records (id, user_id, date, exercise_type, duration_min, calories_burned, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		entry.ID, entry.UserID, entry.Date, entry.ExerciseType,
		entry.DurationMin, entry.CaloriesBurned, entry.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert exercise record: %w", err)
	}
	return nil
}

func (s *Store) AddDiet(entry models.DietEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		INSERT INTO diet_records (id, user_id, date, meal, food_name, calories, protein_g, fat_g, carbs_g, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		entry.ID, entry.UserID, entry.Date, string(entry.Meal), entry.FoodName,
		entry.Calories, entry.ProteinG, entry.FatG, entry.CarbsG,
		entry.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert diet record: %w", err)
	}
	return nil
}

func (s *Store) AddSleep(entry models.SleepEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	sleepClock, err := utils.NormalizeClock(entry.SleepTime)
	if err != nil {
		return err
	}
	wakeClock, err := utils.NormalizeClock(entry.WakeTime)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO sleep_records (id, user_id, date, sleep_time, wake_time, duration_min, quality, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		entry.ID, entry.UserID, entry.Date, sleepClock, wakeClock,
		entry.DurationMin, int(entry.Quality), entry.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert sleep record: %w", err)
	}
	return nil
}

func (s *Store) ListExercise(userID int64, startDate, endDate string) ([]models.ExerciseEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, date, exercise_type, duration_min, calories_burned, created_at
		FROM exercise_records
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date, created_at
	`, userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query exercise records: %w", err)
	}
	defer rows.Close()

	var entries []models.ExerciseEntry
	for rows.Next() {
		var entry models.ExerciseEntry
		var createdAtStr string
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Date, &entry.ExerciseType,
			&entry.DurationMin, &entry.CaloriesBurned, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan exercise record: %w", err)
		}
		if entry.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *Store) ListDiet(userID int64, startDate, endDate string) ([]models.DietEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, date, meal, food_name, calories, protein_g, fat_g, carbs_g, created_at
		FROM diet_records
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date, created_at
	`, userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query diet records: %w", err)
	}
	defer rows.Close()

	var entries []models.DietEntry
	for rows.Next() {
		var entry models.DietEntry
		var meal string
		var createdAtStr string
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Date, &meal, &entry.FoodName,
			&entry.Calories, &entry.ProteinG, &entry.FatG, &entry.CarbsG, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan diet record: %w", err)
		}
		entry.Meal = constants.MealType(meal)
		if entry.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *Store) ListSleep(userID int64, startDate, endDate string) ([]models.SleepEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, date, sleep_time, wake_time, duration_min, quality, created_at
		FROM sleep_records
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date, created_at
	`, userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query sleep records: %w", err)
	}
	defer rows.Close()

	var entries []models.SleepEntry
	for rows.Next() {
		var entry models.SleepEntry
		var quality int
		var createdAtStr string
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Date, &entry.SleepTime,
			&entry.WakeTime, &entry.DurationMin, &quality, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan sleep record: %w", err)
		}
		entry.Quality = constants.SleepQuality(quality)
		if entry.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *Store) DeleteRecord(table string, id string) error {
	var name string
	switch table {
	case "exercise":
		name = "exercise_records"
	case "diet":
		name = "diet_records"
	case "sleep":
		name = "sleep_records"
	default:
		return fmt.Errorf("unknown record kind: %s", table)
	}

	result, err := s.db.Exec("DELETE FROM "+name+" WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return requireRow(result, "record")
}

func (s *Store) WeeklyExercise(userID int64, startDate, endDate string) ([]models.ExerciseDay, error) {
	rows, err := s.db.Query(`
		SELECT date, SUM(duration_min), SUM(calories_burned)
		FROM exercise_records
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		GROUP BY date
		ORDER BY date
	`, userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query weekly exercise: %w", err)
	}
	defer rows.Close()

	var days []models.ExerciseDay
	for rows.Next() {
		var day models.ExerciseDay
		if err := rows.Scan(&day.Date, &day.DurationMin, &day.CaloriesBurned); err != nil {
			return nil, fmt.Errorf("failed to scan weekly exercise: %w", err)
		}
		days = append(days, day)
	}
	return days, rows.Err()
}

func (s *Store) WeeklyDiet(userID int64, startDate, endDate string) ([]models.DietDay, error) {
	rows, err := s.db.Query(`
		SELECT date, SUM(calories), SUM(protein_g), SUM(fat_g), SUM(carbs_g)
		FROM diet_records
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		GROUP BY date
		ORDER BY date
	`, userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query weekly diet: %w", err)
	}
	defer rows.Close()

	var days []models.DietDay
	for rows.Next() {
		var day models.DietDay
		if err := rows.Scan(&day.Date, &day.Calories, &day.ProteinG, &day.FatG, &day.CarbsG); err != nil {
			return nil, fmt.Errorf("failed to scan weekly diet: %w", err)
		}
		days = append(days, day)
	}
	return days, rows.Err()
}

func (s *Store) WeeklySleep(userID int64, startDate, endDate string) ([]models.SleepDay, error) {
	rows, err := s.db.Query(`
		SELECT date, AVG(duration_min), AVG(quality)
		FROM sleep_records
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		GROUP BY date
		ORDER BY date
	`, userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query weekly sleep: %w", err)
	}
	defer rows.Close()

	var days []models.SleepDay
	for rows.Next() {
		var day models.SleepDay
		if err := rows.Scan(&day.Date, &day.DurationMin, &day.Quality); err != nil {
			return nil, fmt.Errorf("failed to scan weekly sleep: %w", err)
		}
		days = append(days, day)
	}
	return days, rows.Err()
}
