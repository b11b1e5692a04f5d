package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/stafflow/hr-backend-go/internal/domain/holiday"
	"github.com/stafflow/hr-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

const holidayColumns = `
	h.id, h.name, h.date, h.is_recurring, h.created_at, h.updated_at`

func scanHoliday(row pgx.Row, hol *holiday.Holiday) error {
	return row.Scan(&hol.ID, &hol.Name, &hol.Date, &hol.IsRecurring, &hol.CreatedAt, &hol.UpdatedAt)
}

// Create implements holiday.HolidayRepository.
func (h *holidayRepository) Create(ctx context.Context, hol holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		INSERT INTO holidays (name, date, is_recurring)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, hol.Name, hol.Date, hol.IsRecurring).
		Scan(&hol.ID, &hol.CreatedAt, &hol.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return holiday.Holiday{}, holiday.ErrDuplicateHoliday
		}
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return hol, nil
}

// GetByID implements holiday.HolidayRepository.
func (h *holidayRepository) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `SELECT` + holidayColumns + ` FROM holidays h WHERE h.id = $1`

	var hol holiday.Holiday
	if err := scanHoliday(q.QueryRow(ctx, query, id), &hol); err != nil {
		if err == pgx.ErrNoRows {
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		}
		return holiday.Holiday{}, fmt.Errorf("failed to get holiday by ID: %w", err)
	}

	return hol, nil
}

// ListByYear implements holiday.HolidayRepository. Recurring holidays match on
// month and day regardless of the stored year.
func (h *holidayRepository) ListByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT` + holidayColumns + `
		FROM holidays h
		WHERE EXTRACT(YEAR FROM h.date) = $1
		   OR h.is_recurring
		ORDER BY EXTRACT(MONTH FROM h.date), EXTRACT(DAY FROM h.date)
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var hol holiday.Holiday
		if err := scanHoliday(rows, &hol); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, hol)
	}

	return holidays, nil
}

// Update implements holiday.HolidayRepository.
func (h *holidayRepository) Update(ctx context.Context, hol holiday.Holiday) error {
	q := GetQuerier(ctx, h.db)

	query := `
		UPDATE holidays
		SET name = $1, date = $2, is_recurring = $3, updated_at = $4
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, hol.Name, hol.Date, hol.IsRecurring, time.Now(), hol.ID).
		Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return holiday.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to update holiday: %w", err)
	}

	return nil
}

// Delete implements holiday.HolidayRepository.
func (h *holidayRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, h.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}
