package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stafflow/hr-backend-go/internal/domain/holiday"
)

type holidayRepository struct {
	mu      sync.RWMutex
	records map[string]holiday.Holiday
}

func NewHolidayRepository() holiday.HolidayRepository {
	return &holidayRepository{records: make(map[string]holiday.Holiday)}
}

// Create implements holiday.HolidayRepository.
func (h *holidayRepository) Create(ctx context.Context, hol holiday.Holiday) (holiday.Holiday, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, existing := range h.records {
		if sameDay(existing.Date, hol.Date) {
			return holiday.Holiday{}, holiday.ErrDuplicateHoliday
		}
	}

	now := time.Now()
	hol.ID = uuid.NewString()
	hol.CreatedAt = now
	hol.UpdatedAt = now
	h.records[hol.ID] = hol

	return hol, nil
}

// GetByID implements holiday.HolidayRepository.
func (h *holidayRepository) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	hol, ok := h.records[id]
	if !ok {
		return holiday.Holiday{}, holiday.ErrHolidayNotFound
	}
	return hol, nil
}

// ListByYear implements holiday.HolidayRepository.
func (h *holidayRepository) ListByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var holidays []holiday.Holiday
	for _, hol := range h.records {
		if hol.Date.Year() == year || hol.IsRecurring {
			holidays = append(holidays, hol)
		}
	}

	sort.SliceStable(holidays, func(i, j int) bool {
		mi, di := holidays[i].Date.Month(), holidays[i].Date.Day()
		mj, dj := holidays[j].Date.Month(), holidays[j].Date.Day()
		if mi != mj {
			return mi < mj
		}
		return di < dj
	})

	return holidays, nil
}

// Update implements holiday.HolidayRepository.
func (h *holidayRepository) Update(ctx context.Context, hol holiday.Holiday) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	existing, ok := h.records[hol.ID]
	if !ok {
		return holiday.ErrHolidayNotFound
	}

	hol.CreatedAt = existing.CreatedAt
	hol.UpdatedAt = time.Now()
	h.records[hol.ID] = hol
	return nil
}

// Delete implements holiday.HolidayRepository.
func (h *holidayRepository) Delete(ctx context.Context, id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.records[id]; !ok {
		return holiday.ErrHolidayNotFound
	}
	delete(h.records, id)
	return nil
}
