package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/stafflow/hr-backend-go/internal/domain/leave"
	"github.com/stafflow/hr-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveColumns = `
	l.id, l.employee_id, l.leave_type,
	l.start_date, l.end_date, l.is_half_day, l.total_days,
	l.reason, l.status, l.approved_by, l.approved_at, l.rejection_reason,
	l.created_at, l.updated_at`

func scanLeave(row pgx.Row, lr *leave.LeaveRequest, withName bool) error {
	dest := []interface{}{
		&lr.ID, &lr.EmployeeID, &lr.Type,
		&lr.StartDate, &lr.EndDate, &lr.IsHalfDay, &lr.TotalDays,
		&lr.Reason, &lr.Status, &lr.ApprovedBy, &lr.ApprovedAt, &lr.RejectionReason,
		&lr.CreatedAt, &lr.UpdatedAt,
	}
	if withName {
		dest = append(dest, &lr.EmployeeName)
	}
	return row.Scan(dest...)
}

// Create implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leave_requests (
			employee_id, leave_type, start_date, end_date, is_half_day,
			total_days, reason, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID,
		req.Type,
		req.StartDate,
		req.EndDate,
		req.IsHalfDay,
		req.TotalDays,
		req.Reason,
		req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT` + leaveColumns + `,
			e.full_name AS employee_name
		FROM leave_requests l
		LEFT JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`

	var lr leave.LeaveRequest
	err := scanLeave(q.QueryRow(ctx, query, id), &lr, true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	return lr, nil
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT` + leaveColumns + `
		FROM leave_requests l
		WHERE l.employee_id = $1
		ORDER BY l.start_date
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		if err := scanLeave(rows, &lr, false); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}

	return requests, nil
}

// Update implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) Update(ctx context.Context, req leave.LeaveRequest) error {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leave_requests
		SET leave_type = $1, start_date = $2, end_date = $3, is_half_day = $4,
			total_days = $5, reason = $6, status = $7, approved_by = $8,
			approved_at = $9, rejection_reason = $10, updated_at = $11
		WHERE id = $12
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		req.Type,
		req.StartDate,
		req.EndDate,
		req.IsHalfDay,
		req.TotalDays,
		req.Reason,
		req.Status,
		req.ApprovedBy,
		req.ApprovedAt,
		req.RejectionReason,
		time.Now(),
		req.ID,
	).Scan(&updatedID)

	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.ErrLeaveNotFound
		}
		return fmt.Errorf("failed to update leave request: %w", err)
	}

	return nil
}

// List implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, l.db)

	baseWhere := "1 = 1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND l.employee_id = $%d", argIdx)
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND l.status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.Type != "" {
		baseWhere += fmt.Sprintf(" AND l.leave_type = $%d", argIdx)
		args = append(args, filter.Type)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM leave_requests l WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT`+leaveColumns+`,
			e.full_name AS employee_name
		FROM leave_requests l
		LEFT JOIN employees e ON e.id = l.employee_id
		WHERE %s
		ORDER BY l.created_at DESC
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
		return nil, 0, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		if err := scanLeave(rows, &lr, true); err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}

	return requests, total, nil
}

// Delete implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, l.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}
