package sqlite

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

	// Normalize the clock on write so reads never see mixed formats.
	clock, err := utils.NormalizeClock(reminder.Time)
	if err != nil {
		return 0, err
	}

	res, err := s.execRetry(`
		INSERT INTO reminders (user_id, date, time, category, content, is_completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		reminder.UserID, reminder.Date, clock,
		string(reminder.Category), reminder.Content, boolToInt(reminder.Completed),
		reminder.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert reminder: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get reminder id: %w", err)
	}
	return id, nil
}

func (s *Store) GetReminder(id int64) (models.Reminder, error) {
	row := s.db.QueryRow("SELECT "+reminderColumns+" FROM reminders WHERE id = ?", id)
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
	query := "SELECT " + reminderColumns + " FROM reminders WHERE user_id = ?"
	if !includeCompleted {
		query += " AND is_completed = 0"
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

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reminders: %w", err)
	}
	return reminders, nil
}

// DueReminders returns pending reminders whose scheduled date+time falls
// inside [windowStart, windowEnd], ordered by scheduled time. When the
// window crosses midnight the predicate splits into one leg per date.
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
			WHERE user_id = ? AND is_completed = 0
			  AND date = ? AND time BETWEEN ? AND ?
			ORDER BY time
		`, userID, startDate, startClock, endClock)
	} else {
		rows, err = s.db.Query(`
			SELECT `+reminderColumns+`
			FROM reminders
			WHERE user_id = ? AND is_completed = 0
			  AND ((date = ? AND time >= ?) OR (date = ? AND time <= ?))
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

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating due reminders: %w", err)
	}
	return reminders, nil
}

func (s *Store) CompleteReminder(id int64) error {
	result, err := s.execRetry("UPDATE reminders SET is_completed = 1 WHERE id = ?", id)
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

	result, err := s.execRetry(
		"UPDATE reminders SET date = ?, time = ?, is_completed = 0 WHERE id = ?",
		date, normalized, id,
	)
	if err != nil {
		return fmt.Errorf("failed to reschedule reminder: %w", err)
	}
	return requireRow(result, "reminder")
}

func (s *Store) DeleteReminder(id int64) error {
	result, err := s.execRetry("DELETE FROM reminders WHERE id = ?", id)
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
	var completed int
	var createdAtStr string

	err := row.Scan(
		&reminder.ID, &reminder.UserID, &reminder.Date, &reminder.Time,
		&category, &reminder.Content, &completed, &createdAtStr,
	)
	if err != nil {
		return models.Reminder{}, err
	}

	reminder.Category = constants.ReminderCategory(category)
	reminder.Completed = completed != 0

	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return models.Reminder{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	reminder.CreatedAt = createdAt

	return reminder, nil
}

func requireRow(result sql.Result, what string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s not found", what)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
