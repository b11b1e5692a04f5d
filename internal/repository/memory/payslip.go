package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stafflow/hr-backend-go/internal/domain/payslip"
)

type payslipRepository struct {
	mu      sync.RWMutex
	records map[string]payslip.Payslip
}

func NewPayslipRepository() payslip.PayslipRepository {
	return &payslipRepository{records: make(map[string]payslip.Payslip)}
}

// Create implements payslip.PayslipRepository.
func (p *payslipRepository) Create(ctx context.Context, ps payslip.Payslip) (payslip.Payslip, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, existing := range p.records {
		if existing.EmployeeID == ps.EmployeeID && existing.Month == ps.Month && existing.Year == ps.Year {
			return payslip.Payslip{}, payslip.ErrDuplicatePayslip
		}
	}

	now := time.Now()
	ps.ID = uuid.NewString()
	ps.CreatedAt = now
	ps.UpdatedAt = now
	p.records[ps.ID] = ps

	return ps, nil
}

// GetByID implements payslip.PayslipRepository.
func (p *payslipRepository) GetByID(ctx context.Context, id string) (payslip.Payslip, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	ps, ok := p.records[id]
	if !ok {
		return payslip.Payslip{}, payslip.ErrPayslipNotFound
	}
	return ps, nil
}

// List implements payslip.PayslipRepository.
func (p *payslipRepository) List(ctx context.Context, filter payslip.PayslipFilter) ([]payslip.Payslip, int64, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var matched []payslip.Payslip
	for _, ps := range p.records {
		if filter.EmployeeID != "" && ps.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Year != 0 && ps.Year != filter.Year {
			continue
		}
		matched = append(matched, ps)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Year != matched[j].Year {
			return matched[i].Year > matched[j].Year
		}
		return matched[i].Month > matched[j].Month
	})
	total := int64(len(matched))

	return paginate(matched, filter.Page, filter.Limit), total, nil
}

// Delete implements payslip.PayslipRepository.
func (p *payslipRepository) Delete(ctx context.Context, id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.records[id]; !ok {
		return payslip.ErrPayslipNotFound
	}
	delete(p.records, id)
	return nil
}
