package holiday

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stafflow/hr-backend-go/internal/domain/holiday"
)

type HolidayServiceImpl struct {
	holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{HolidayRepository: holidayRepo}
}

// Create implements holiday.HolidayService.
func (h *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	created, err := h.HolidayRepository.Create(ctx, holiday.Holiday{
		Name:        req.Name,
		Date:        date,
		IsRecurring: req.IsRecurring,
	})
	if err != nil {
		if errors.Is(err, holiday.ErrDuplicateHoliday) {
			return holiday.HolidayResponse{}, holiday.ErrDuplicateHoliday
		}
		return holiday.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return mapHolidayToResponse(created), nil
}

// Update implements holiday.HolidayService.
func (h *HolidayServiceImpl) Update(ctx context.Context, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	hol, err := h.HolidayRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, holiday.ErrHolidayNotFound) {
			return holiday.HolidayResponse{}, holiday.ErrHolidayNotFound
		}
		return holiday.HolidayResponse{}, fmt.Errorf("failed to get holiday: %w", err)
	}

	if req.Name != nil {
		hol.Name = *req.Name
	}
	if req.Date != nil {
		date, _ := time.Parse("2006-01-02", *req.Date)
		hol.Date = date
	}
	if req.IsRecurring != nil {
		hol.IsRecurring = *req.IsRecurring
	}

	if err := h.HolidayRepository.Update(ctx, hol); err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to update holiday: %w", err)
	}

	return mapHolidayToResponse(hol), nil
}

// ListByYear implements holiday.HolidayService.
func (h *HolidayServiceImpl) ListByYear(ctx context.Context, year int) ([]holiday.HolidayResponse, error) {
	holidays, err := h.HolidayRepository.ListByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, hol := range holidays {
		responses = append(responses, mapHolidayToResponse(hol))
	}
	return responses, nil
}

// Delete implements holiday.HolidayService.
func (h *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	if err := h.HolidayRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, holiday.ErrHolidayNotFound) {
			return holiday.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}

func mapHolidayToResponse(hol holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:          hol.ID,
		Name:        hol.Name,
		Date:        hol.Date.Format("2006-01-02"),
		IsRecurring: hol.IsRecurring,
		CreatedAt:   hol.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   hol.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
