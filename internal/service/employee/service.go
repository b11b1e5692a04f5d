package employee

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/stafflow/hr-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{EmployeeRepository: employeeRepo}
}

// Create implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		Position:   req.Position,
		Department: req.Department,
		JoinDate:   parseDatePtr(req.JoinDate),
		IsActive:   true,
	}

	created, err := e.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		if errors.Is(err, employee.ErrEmailExists) {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return mapEmployeeToResponse(created), nil
}

// Update implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := e.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Phone != nil {
		emp.Phone = req.Phone
	}
	if req.Position != nil {
		emp.Position = req.Position
	}
	if req.Department != nil {
		emp.Department = req.Department
	}
	if req.JoinDate != nil {
		emp.JoinDate = parseDatePtr(req.JoinDate)
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}

	if err := e.EmployeeRepository.Update(ctx, emp); err != nil {
		if errors.Is(err, employee.ErrEmailExists) {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

// Get implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := e.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (e *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	employees, total, err := e.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	return employee.ListEmployeeResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Employees:  responses,
	}, nil
}

// Delete implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if err := e.EmployeeRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

func parseDatePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	var joinDate *string
	if emp.JoinDate != nil {
		formatted := emp.JoinDate.Format("2006-01-02")
		joinDate = &formatted
	}

	return employee.EmployeeResponse{
		ID:         emp.ID,
		FullName:   emp.FullName,
		Email:      emp.Email,
		Phone:      emp.Phone,
		Position:   emp.Position,
		Department: emp.Department,
		JoinDate:   joinDate,
		IsActive:   emp.IsActive,
		CreatedAt:  emp.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:  emp.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
