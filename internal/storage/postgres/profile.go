package postgres

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
		WHERE id = $1
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

	result, err := s.db.Exec(`
		UPDATE users SET name = $1, gender = $2, age = $3, height_cm = $4, weight_kg = $5
		WHERE id = $6
	`,
		profile.Name, string(profile.Gender), profile.Age,
		profile.HeightCm, profile.WeightKg, profile.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return requireRow(result, "profile")
}
