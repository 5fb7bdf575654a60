package models

import "fmt"

// Gender as recorded on the biometric profile.
type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
)

// Profile is a read-only biometric snapshot used to compute recommended
// daily targets. Neither the scheduler nor the analyzer mutates it.
type Profile struct {
	UserID   int64   `json:"user_id"`
	Name     string  `json:"name"`
	Gender   Gender  `json:"gender"`
	Age      int     `json:"age"`       // years
	HeightCm float64 `json:"height_cm"` // centimeters
	WeightKg float64 `json:"weight_kg"` // kilograms
}

func (p *Profile) Validate() error {
	if p.Gender != GenderFemale && p.Gender != GenderMale {
		return fmt.Errorf("invalid gender: %s (must be female or male)", p.Gender)
	}
	if p.Age < 0 || p.Age > 130 {
		return fmt.Errorf("age out of range: %d", p.Age)
	}
	// Zero means not yet recorded; the analyzer falls back to default
	// recommendations for incomplete profiles.
	if p.HeightCm < 0 {
		return fmt.Errorf("height cannot be negative")
	}
	if p.WeightKg < 0 {
		return fmt.Errorf("weight cannot be negative")
	}
	return nil
}
