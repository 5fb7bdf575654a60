package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/vitalog-app/vitalog/internal/models"
)

func (s *Store) GetProfile(userID int64) (models.Profile, error) {
	var profile models.Profile
	var gender string

	err := s.db.QueryRow(`
		SELECT id, name, gender, age, height_cm, weight_kg
		FROM users
		WHERE id = ?
	`, userID).Scan(
		&profile.UserID, &profile.Name, &gender,
		&profile.Age, &profile.HeightCm, &profile.WeightKg,
	)
	if err == sql.ErrNoRows {
		return models.Profile{}, fmt.Errorf("profile not found")
	}
	if err != nil {
		return models.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	profile.Gender = models.Gender(gender)
	return profile, nil
}

func (s *Store) SaveProfile(profile models.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	result, err := s.execRetry(`
		UPDATE users SET name = ?, gender = ?, age = ?, height_cm = ?, weight_kg = ?
		WHERE id = ?
	`,
		profile.Name, string(profile.Gender), profile.Age,
		profile.HeightCm, profile.WeightKg, profile.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return requireRow(result, "profile")
}
