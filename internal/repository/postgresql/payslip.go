package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stafflow/hr-backend-go/internal/domain/payslip"
	"github.com/stafflow/hr-backend-go/internal/pkg/database"
)

type payslipRepository struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payslip.PayslipRepository {
	return &payslipRepository{db: db}
}

const payslipColumns = `
	p.id, p.employee_id, p.month, p.year,
	p.file_name, p.file_path, p.file_size, p.uploaded_by,
	p.created_at, p.updated_at`

func scanPayslip(row pgx.Row, ps *payslip.Payslip, withName bool) error {
	dest := []interface{}{
		&ps.ID, &ps.EmployeeID, &ps.Month, &ps.Year,
		&ps.FileName, &ps.FilePath, &ps.FileSize, &ps.UploadedBy,
		&ps.CreatedAt, &ps.UpdatedAt,
	}
	if withName {
		dest = append(dest, &ps.EmployeeName)
	}
	return row.Scan(dest...)
}

// Create implements payslip.PayslipRepository.
func (p *payslipRepository) Create(ctx context.Context, ps payslip.Payslip) (payslip.Payslip, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO payslips (
			employee_id, month, year, file_name, file_path, file_size, uploaded_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		ps.EmployeeID,
		ps.Month,
		ps.Year,
		ps.FileName,
		ps.FilePath,
		ps.FileSize,
		ps.UploadedBy,
	).Scan(&ps.ID, &ps.CreatedAt, &ps.UpdatedAt)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return payslip.Payslip{}, payslip.ErrDuplicatePayslip
		}
		return payslip.Payslip{}, fmt.Errorf("failed to create payslip: %w", err)
	}

	return ps, nil
}

// GetByID implements payslip.PayslipRepository.
func (p *payslipRepository) GetByID(ctx context.Context, id string) (payslip.Payslip, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT` + payslipColumns + `,
			e.full_name AS employee_name
		FROM payslips p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	var ps payslip.Payslip
	if err := scanPayslip(q.QueryRow(ctx, query, id), &ps, true); err != nil {
		if err == pgx.ErrNoRows {
			return payslip.Payslip{}, payslip.ErrPayslipNotFound
		}
		return payslip.Payslip{}, fmt.Errorf("failed to get payslip by ID: %w", err)
	}

	return ps, nil
}

// List implements payslip.PayslipRepository.
func (p *payslipRepository) List(ctx context.Context, filter payslip.PayslipFilter) ([]payslip.Payslip, int64, error) {
	q := GetQuerier(ctx, p.db)

	baseWhere := "1 = 1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND p.employee_id = $%d", argIdx)
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.Year != 0 {
		baseWhere += fmt.Sprintf(" AND p.year = $%d", argIdx)
		args = append(args, filter.Year)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM payslips p WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payslips: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT`+payslipColumns+`,
			e.full_name AS employee_name
		FROM payslips p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE %s
		ORDER BY p.year DESC, p.month DESC
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
		return nil, 0, fmt.Errorf("failed to query payslips: %w", err)
	}
	defer rows.Close()

	var payslips []payslip.Payslip
	for rows.Next() {
		var ps payslip.Payslip
		if err := scanPayslip(rows, &ps, true); err != nil {
			return nil, 0, fmt.Errorf("failed to scan payslip: %w", err)
		}
		payslips = append(payslips, ps)
	}

	return payslips, total, nil
}

// Delete implements payslip.PayslipRepository.
func (p *payslipRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, p.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM payslips WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payslip: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return payslip.ErrPayslipNotFound
	}

	return nil
}
