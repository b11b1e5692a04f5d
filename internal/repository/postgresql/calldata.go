package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/stafflow/hr-backend-go/internal/domain/calldata"
	"github.com/stafflow/hr-backend-go/internal/pkg/database"
)

type callDataRepository struct {
	db *database.DB
}

func NewCallDataRepository(db *database.DB) calldata.CallDataRepository {
	return &callDataRepository{db: db}
}

const callDataColumns = `
	c.id, c.employee_id, c.date,
	c.total_calls, c.total_call_time, c.interested_students, c.visited_today,
	c.performance_score, c.notes,
	c.created_at, c.updated_at`

func scanCallData(row pgx.Row, cd *calldata.CallData, withName bool) error {
	dest := []interface{}{
		&cd.ID, &cd.EmployeeID, &cd.Date,
		&cd.TotalCalls, &cd.TotalCallTime, &cd.InterestedStudents, &cd.VisitedToday,
		&cd.PerformanceScore, &cd.Notes,
		&cd.CreatedAt, &cd.UpdatedAt,
	}
	if withName {
		dest = append(dest, &cd.EmployeeName)
	}
	return row.Scan(dest...)
}

// Create implements calldata.CallDataRepository.
func (c *callDataRepository) Create(ctx context.Context, cd calldata.CallData) (calldata.CallData, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO call_data (
			employee_id, date, total_calls, total_call_time,
			interested_students, visited_today, performance_score, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		cd.EmployeeID,
		cd.Date,
		cd.TotalCalls,
		cd.TotalCallTime,
		cd.InterestedStudents,
		cd.VisitedToday,
		cd.PerformanceScore,
		cd.Notes,
	).Scan(&cd.ID, &cd.CreatedAt, &cd.UpdatedAt)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return calldata.CallData{}, calldata.ErrDuplicateCallData
		}
		return calldata.CallData{}, fmt.Errorf("failed to create call data: %w", err)
	}

	return cd, nil
}

// GetByID implements calldata.CallDataRepository.
func (c *callDataRepository) GetByID(ctx context.Context, id string) (calldata.CallData, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT` + callDataColumns + `,
			e.full_name AS employee_name
		FROM call_data c
		LEFT JOIN employees e ON e.id = c.employee_id
		WHERE c.id = $1
	`

	var cd calldata.CallData
	err := scanCallData(q.QueryRow(ctx, query, id), &cd, true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return calldata.CallData{}, calldata.ErrCallDataNotFound
		}
		return calldata.CallData{}, fmt.Errorf("failed to get call data by ID: %w", err)
	}

	return cd, nil
}

// GetByEmployeeAndDate implements calldata.CallDataRepository.
func (c *callDataRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*calldata.CallData, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT` + callDataColumns + `
		FROM call_data c
		WHERE c.employee_id = $1
		  AND c.date = $2
		LIMIT 1
	`

	var cd calldata.CallData
	err := scanCallData(q.QueryRow(ctx, query, employeeID, date), &cd, false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get call data by employee and date: %w", err)
	}

	return &cd, nil
}

// Update implements calldata.CallDataRepository.
func (c *callDataRepository) Update(ctx context.Context, cd calldata.CallData) error {
	q := GetQuerier(ctx, c.db)

	query := `
		UPDATE call_data
		SET total_calls = $1, total_call_time = $2, interested_students = $3,
			visited_today = $4, performance_score = $5, notes = $6, updated_at = $7
		WHERE id = $8
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		cd.TotalCalls,
		cd.TotalCallTime,
		cd.InterestedStudents,
		cd.VisitedToday,
		cd.PerformanceScore,
		cd.Notes,
		time.Now(),
		cd.ID,
	).Scan(&updatedID)

	if err != nil {
		if err == pgx.ErrNoRows {
			return calldata.ErrCallDataNotFound
		}
		return fmt.Errorf("failed to update call data: %w", err)
	}

	return nil
}

// List implements calldata.CallDataRepository.
func (c *callDataRepository) List(ctx context.Context, filter calldata.CallDataFilter) ([]calldata.CallData, int64, error) {
	q := GetQuerier(ctx, c.db)

	baseWhere := "1 = 1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND c.employee_id = $%d", argIdx)
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND c.date >= $%d", argIdx)
		args = append(args, filter.StartDate)
		argIdx++
	}
	if filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND c.date <= $%d", argIdx)
		args = append(args, filter.EndDate)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM call_data c WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count call data: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT`+callDataColumns+`,
			e.full_name AS employee_name
		FROM call_data c
		LEFT JOIN employees e ON e.id = c.employee_id
		WHERE %s
		ORDER BY c.date DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query call data: %w", err)
	}
	defer rows.Close()

	var records []calldata.CallData
	for rows.Next() {
		var cd calldata.CallData
		if err := scanCallData(rows, &cd, true); err != nil {
			return nil, 0, fmt.Errorf("failed to scan call data: %w", err)
		}
		records = append(records, cd)
	}

	return records, total, nil
}

// Delete implements calldata.CallDataRepository.
func (c *callDataRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, c.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM call_data WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete call data: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return calldata.ErrCallDataNotFound
	}

	return nil
}
