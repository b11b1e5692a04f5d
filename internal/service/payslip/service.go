package payslip

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/stafflow/hr-backend-go/internal/domain/auth"
	"github.com/stafflow/hr-backend-go/internal/domain/employee"
	"github.com/stafflow/hr-backend-go/internal/domain/payslip"
	"github.com/stafflow/hr-backend-go/internal/pkg/storage"
)

type PayslipServiceImpl struct {
	payslip.PayslipRepository
	employee.EmployeeRepository
	files storage.FileStorage
}

func NewPayslipService(
	payslipRepo payslip.PayslipRepository,
	employeeRepo employee.EmployeeRepository,
	files storage.FileStorage,
) payslip.PayslipService {
	return &PayslipServiceImpl{
		PayslipRepository:  payslipRepo,
		EmployeeRepository: employeeRepo,
		files:              files,
	}
}

// Upload implements payslip.PayslipService. The file is written to storage
// first; if the metadata insert then fails the stored file is removed so the
// two never drift apart.
func (p *PayslipServiceImpl) Upload(ctx context.Context, req payslip.UploadPayslipRequest) (payslip.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payslip.PayslipResponse{}, err
	}

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}
	if !actor.IsAdmin() {
		return payslip.PayslipResponse{}, payslip.ErrUnauthorized
	}

	if _, err := p.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return payslip.PayslipResponse{}, employee.ErrEmployeeNotFound
		}
		return payslip.PayslipResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	key := fmt.Sprintf("payslips/%s/%d-%02d%s", req.EmployeeID, req.Year, req.Month, filepath.Ext(req.FileName))
	if filepath.Ext(req.FileName) == "" {
		key = fmt.Sprintf("payslips/%s/%s", req.EmployeeID, uuid.NewString())
	}

	storedPath, err := p.files.Upload(ctx, req.File, key)
	if err != nil {
		return payslip.PayslipResponse{}, fmt.Errorf("failed to store payslip file: %w", err)
	}

	created, err := p.PayslipRepository.Create(ctx, payslip.Payslip{
		EmployeeID: req.EmployeeID,
		Month:      req.Month,
		Year:       req.Year,
		FileName:   req.FileName,
		FilePath:   storedPath,
		FileSize:   req.FileSize,
		UploadedBy: actor.UserID,
	})
	if err != nil {
		if delErr := p.files.Delete(ctx, storedPath); delErr != nil {
			err = fmt.Errorf("%w (orphan file cleanup also failed: %v)", err, delErr)
		}
		if errors.Is(err, payslip.ErrDuplicatePayslip) {
			return payslip.PayslipResponse{}, payslip.ErrDuplicatePayslip
		}
		return payslip.PayslipResponse{}, fmt.Errorf("failed to create payslip: %w", err)
	}

	return mapPayslipToResponse(created), nil
}

// Download implements payslip.PayslipService.
func (p *PayslipServiceImpl) Download(ctx context.Context, id string) (payslip.Payslip, io.ReadCloser, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return payslip.Payslip{}, nil, err
	}

	ps, err := p.PayslipRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, payslip.ErrPayslipNotFound) {
			return payslip.Payslip{}, nil, payslip.ErrPayslipNotFound
		}
		return payslip.Payslip{}, nil, fmt.Errorf("failed to get payslip: %w", err)
	}

	if !actor.IsAdmin() && ps.EmployeeID != actor.EmployeeID {
		return payslip.Payslip{}, nil, payslip.ErrUnauthorized
	}

	file, err := p.files.Download(ctx, ps.FilePath)
	if err != nil {
		return payslip.Payslip{}, nil, fmt.Errorf("failed to open payslip file: %w", err)
	}

	return ps, file, nil
}

// GetMyPayslips implements payslip.PayslipService.
func (p *PayslipServiceImpl) GetMyPayslips(ctx context.Context, filter payslip.PayslipFilter) (payslip.ListPayslipResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return payslip.ListPayslipResponse{}, err
	}

	filter.EmployeeID = actor.EmployeeID
	return p.List(ctx, filter)
}

// List implements payslip.PayslipService.
func (p *PayslipServiceImpl) List(ctx context.Context, filter payslip.PayslipFilter) (payslip.ListPayslipResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	payslips, total, err := p.PayslipRepository.List(ctx, filter)
	if err != nil {
		return payslip.ListPayslipResponse{}, fmt.Errorf("failed to list payslips: %w", err)
	}

	responses := make([]payslip.PayslipResponse, 0, len(payslips))
	for _, ps := range payslips {
		responses = append(responses, mapPayslipToResponse(ps))
	}

	return payslip.ListPayslipResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Payslips:   responses,
	}, nil
}

// Delete implements payslip.PayslipService.
func (p *PayslipServiceImpl) Delete(ctx context.Context, id string) error {
	ps, err := p.PayslipRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, payslip.ErrPayslipNotFound) {
			return payslip.ErrPayslipNotFound
		}
		return fmt.Errorf("failed to get payslip: %w", err)
	}

	if err := p.PayslipRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete payslip: %w", err)
	}

	if err := p.files.Delete(ctx, ps.FilePath); err != nil {
		return fmt.Errorf("failed to delete payslip file: %w", err)
	}

	return nil
}

func mapPayslipToResponse(ps payslip.Payslip) payslip.PayslipResponse {
	var employeeName string
	if ps.EmployeeName != nil {
		employeeName = *ps.EmployeeName
	}

	return payslip.PayslipResponse{
		ID:           ps.ID,
		EmployeeID:   ps.EmployeeID,
		EmployeeName: employeeName,
		Month:        ps.Month,
		Year:         ps.Year,
		FileName:     ps.FileName,
		FileSize:     ps.FileSize,
		UploadedBy:   ps.UploadedBy,
		CreatedAt:    ps.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
