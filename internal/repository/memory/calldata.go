package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stafflow/hr-backend-go/internal/domain/calldata"
)

type callDataRepository struct {
	mu      sync.RWMutex
	records map[string]calldata.CallData
}

func NewCallDataRepository() calldata.CallDataRepository {
	return &callDataRepository{records: make(map[string]calldata.CallData)}
}

// Create implements calldata.CallDataRepository.
func (c *callDataRepository) Create(ctx context.Context, cd calldata.CallData) (calldata.CallData, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.records {
		if existing.EmployeeID == cd.EmployeeID && sameDay(existing.Date, cd.Date) {
			return calldata.CallData{}, calldata.ErrDuplicateCallData
		}
	}

	now := time.Now()
	cd.ID = uuid.NewString()
	cd.CreatedAt = now
	cd.UpdatedAt = now
	c.records[cd.ID] = cd

	return cd, nil
}

// GetByID implements calldata.CallDataRepository.
func (c *callDataRepository) GetByID(ctx context.Context, id string) (calldata.CallData, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cd, ok := c.records[id]
	if !ok {
		return calldata.CallData{}, calldata.ErrCallDataNotFound
	}
	return cd, nil
}

// GetByEmployeeAndDate implements calldata.CallDataRepository.
func (c *callDataRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*calldata.CallData, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, cd := range c.records {
		if cd.EmployeeID == employeeID && sameDay(cd.Date, date) {
			found := cd
			return &found, nil
		}
	}
	return nil, nil
}

// Update implements calldata.CallDataRepository.
func (c *callDataRepository) Update(ctx context.Context, cd calldata.CallData) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	existing, ok := c.records[cd.ID]
	if !ok {
		return calldata.ErrCallDataNotFound
	}

	cd.CreatedAt = existing.CreatedAt
	cd.UpdatedAt = time.Now()
	c.records[cd.ID] = cd
	return nil
}

// List implements calldata.CallDataRepository.
func (c *callDataRepository) List(ctx context.Context, filter calldata.CallDataFilter) ([]calldata.CallData, int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var matched []calldata.CallData
	for _, cd := range c.records {
		if filter.EmployeeID != "" && cd.EmployeeID != filter.EmployeeID {
			continue
		}
		if !inDateRange(cd.Date, filter.StartDate, filter.EndDate) {
			continue
		}
		matched = append(matched, cd)
	}

	sortByDateDesc(matched, func(cd calldata.CallData) time.Time { return cd.Date })
	total := int64(len(matched))

	return paginate(matched, filter.Page, filter.Limit), total, nil
}

// Delete implements calldata.CallDataRepository.
func (c *callDataRepository) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.records[id]; !ok {
		return calldata.ErrCallDataNotFound
	}
	delete(c.records, id)
	return nil
}
