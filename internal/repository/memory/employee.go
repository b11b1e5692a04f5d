package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stafflow/hr-backend-go/internal/domain/employee"
)

type employeeRepository struct {
	mu      sync.RWMutex
	records map[string]employee.Employee
}

func NewEmployeeRepository() employee.EmployeeRepository {
	return &employeeRepository{records: make(map[string]employee.Employee)}
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, existing := range e.records {
		if strings.EqualFold(existing.Email, emp.Email) {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}

	now := time.Now()
	emp.ID = uuid.NewString()
	emp.CreatedAt = now
	emp.UpdatedAt = now
	e.records[emp.ID] = emp

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	emp, ok := e.records[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (e *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	for _, emp := range e.records {
		if strings.EqualFold(emp.Email, email) {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	existing, ok := e.records[emp.ID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}

	for id, other := range e.records {
		if id != emp.ID && strings.EqualFold(other.Email, emp.Email) {
			return employee.ErrEmailExists
		}
	}

	emp.CreatedAt = existing.CreatedAt
	emp.UpdatedAt = time.Now()
	e.records[emp.ID] = emp
	return nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var matched []employee.Employee
	for _, emp := range e.records {
		if filter.Search != "" && !containsFold(emp.FullName, filter.Search) && !containsFold(emp.Email, filter.Search) {
			continue
		}
		if filter.Department != "" && (emp.Department == nil || *emp.Department != filter.Department) {
			continue
		}
		if filter.IsActive != nil && emp.IsActive != *filter.IsActive {
			continue
		}
		matched = append(matched, emp)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].FullName < matched[j].FullName
	})
	total := int64(len(matched))

	return paginate(matched, filter.Page, filter.Limit), total, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepository) Delete(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.records[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(e.records, id)
	return nil
}
