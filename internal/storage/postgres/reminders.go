package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/vitalog-app/vitalog/internal/constants"
	"github.com/vitalog-app/vitalog/internal/logger"
	"github.com/vitalog-app/vitalog/internal/models"
	"github.com/vitalog-app/vitalog/internal/utils"
)

const reminderColumns = "id, user_id, date, time, category, content, is_completed, created_at"

func (s *Store) AddReminder(reminder models.Reminder) (int64, error) {
	if err := reminder.Validate(); err != nil {
		return 0, err
	}

	clock, err := utils.NormalizeClock(reminder.Time)
	if err != nil {
		return 0, err
	}

	var id int64
	err = s.db.QueryRow(`
		INSERT INTO reminders (user_id, date, time, category, content, is_completed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		reminder.UserID, reminder.Date, clock,
		string(reminder.Category), reminder.Content, reminder.Completed,
		reminder.CreatedAt.Format(time.RFC3339),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert reminder: %w", err)
	}
	return id, nil
}

func (s *Store) GetReminder(id int64) (models.Reminder, error) {
	row := s.db.QueryRow("SELECT "+reminderColumns+" FROM reminders WHERE id = $1", id)
	reminder, err := scanReminder(row)
	if err == sql.ErrNoRows {
		return models.Reminder{}, fmt.Errorf("reminder not found")
	}
	if err != nil {
		return models.Reminder{}, fmt.Errorf("failed to get reminder: %w", err)
	}
	return reminder, nil
}

func (s *Store) GetReminders(userID int64, includeCompleted bool) ([]models.Reminder, error) {
	query := "SELECT " + reminderColumns + " FROM reminders WHERE user_id = $1"
	if !includeCompleted {
		query += " AND is_completed = FALSE"
	}
	query += " ORDER BY date, time"

	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reminders: %w", err)
	}
	defer rows.Close()

	var reminders []models.Reminder
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminders = append(reminders, reminder)
	}
	return reminders, rows.Err()
}

func (s *Store) DueReminders(userID int64, windowStart, windowEnd time.Time) ([]models.Reminder, error) {
	startDate := windowStart.Format(constants.DateFormat)
	endDate := windowEnd.Format(constants.DateFormat)
	startClock := windowStart.Format(constants.TimeFormat)
	endClock := windowEnd.Format(constants.TimeFormat)

	var rows *sql.Rows
	var err error
	if startDate == endDate {
		rows, err = s.db.Query(`
			SELECT `+reminderColumns+`
			FROM reminders
			WHERE user_id = $1 AND is_completed = FALSE
			  AND date = $2 AND time BETWEEN $3 AND $4
			ORDER BY time
		`, userID, startDate, startClock, endClock)
	} else {
		rows, err = s.db.Query(`
			SELECT `+reminderColumns+`
			FROM reminders
			WHERE user_id = $1 AND is_completed = FALSE
			  AND ((date = $2 AND time >= $3) OR (date = $4 AND time <= $5))
			ORDER BY date, time
		`, userID, startDate, startClock, endDate, endClock)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query due reminders: %w", err)
	}
	defer rows.Close()

	var reminders []models.Reminder
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			// One corrupt row must not starve the rest of the tick.
			logger.Error("skipping malformed reminder row", "error", err)
			continue
		}
		reminders = append(reminders, reminder)
	}
	return reminders, rows.Err()
}

func (s *Store) CompleteReminder(id int64) error {
	result, err := s.db.Exec("UPDATE reminders SET is_completed = TRUE WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to complete reminder: %w", err)
	}
	return requireRow(result, "reminder")
}

func (s *Store) RescheduleReminder(id int64, date, clock string) error {
	if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
	}
	normalized, err := utils.NormalizeClock(clock)
	if err != nil {
		return err
	}

	result, err := s.db.Exec(
		"UPDATE reminders SET date = $1, time = $2, is_completed = FALSE WHERE id = $3",
		date, normalized, id,
	)
	if err != nil {
		return fmt.Errorf("failed to reschedule reminder: %w", err)
	}
	return requireRow(result, "reminder")
}

func (s *Store) DeleteReminder(id int64) error {
	result, err := s.db.Exec("DELETE FROM reminders WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	return requireRow(result, "reminder")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReminder(row rowScanner) (models.Reminder, error) {
	var reminder models.Reminder
	var category string
	var createdAtStr string

	err := row.Scan(
		&reminder.ID, &reminder.UserID, &reminder.Date, &reminder.Time,
		&category, &reminder.Content, &reminder.Completed, &createdAtStr,
	)
	if err != nil {
		return models.Reminder{}, err
	}

	reminder.Category = constants.ReminderCategory(category)

	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return models.Reminder{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	reminder.CreatedAt = createdAt

	return reminder, nil
}
