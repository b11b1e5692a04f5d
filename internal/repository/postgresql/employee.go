package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/stafflow/hr-backend-go/internal/domain/employee"
	"github.com/stafflow/hr-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	e.id, e.full_name, e.email, e.phone, e.position, e.department,
	e.join_date, e.is_active, e.created_at, e.updated_at`

func scanEmployee(row pgx.Row, emp *employee.Employee) error {
	return row.Scan(
		&emp.ID, &emp.FullName, &emp.Email, &emp.Phone, &emp.Position, &emp.Department,
		&emp.JoinDate, &emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt,
	)
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			full_name, email, phone, position, department, join_date, is_active
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.FullName,
		emp.Email,
		emp.Phone,
		emp.Position,
		emp.Department,
		emp.JoinDate,
		emp.IsActive,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT` + employeeColumns + ` FROM employees e WHERE e.id = $1`

	var emp employee.Employee
	if err := scanEmployee(q.QueryRow(ctx, query, id), &emp); err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return emp, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (e *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT` + employeeColumns + ` FROM employees e WHERE e.email = $1`

	var emp employee.Employee
	if err := scanEmployee(q.QueryRow(ctx, query, email), &emp); err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return emp, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET full_name = $1, email = $2, phone = $3, position = $4,
			department = $5, join_date = $6, is_active = $7, updated_at = $8
		WHERE id = $9
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		emp.FullName,
		emp.Email,
		emp.Phone,
		emp.Position,
		emp.Department,
		emp.JoinDate,
		emp.IsActive,
		time.Now(),
		emp.ID,
	).Scan(&updatedID)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		if database.IsUniqueViolation(err) {
			return employee.ErrEmailExists
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, e.db)

	baseWhere := "1 = 1"
	args := []interface{}{}
	argIdx := 1

	if filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (e.full_name ILIKE $%d OR e.email ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}
	if filter.Department != "" {
		baseWhere += fmt.Sprintf(" AND e.department = $%d", argIdx)
		args = append(args, filter.Department)
		argIdx++
	}
	if filter.IsActive != nil {
		baseWhere += fmt.Sprintf(" AND e.is_active = $%d", argIdx)
		args = append(args, *filter.IsActive)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM employees e WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT`+employeeColumns+`
		FROM employees e
		WHERE %s
		ORDER BY e.full_name
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
		return nil, 0, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := scanEmployee(rows, &emp); err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, total, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
