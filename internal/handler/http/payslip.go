package http

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/stafflow/hr-backend-go/internal/domain/payslip"
	"github.com/stafflow/hr-backend-go/internal/handler/http/response"
)

// maxPayslipSize caps the multipart upload at 10 MB.
const maxPayslipSize = 10 << 20

type PayslipHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
	GetMyPayslips(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PayslipHandlerImpl struct {
	payslipService payslip.PayslipService
}

func NewPayslipHandler(payslipService payslip.PayslipService) PayslipHandler {
	return &PayslipHandlerImpl{payslipService: payslipService}
}

// Upload implements PayslipHandler.
func (p *PayslipHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxPayslipSize); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	req := payslip.UploadPayslipRequest{
		EmployeeID: r.FormValue("employee_id"),
		Month:      formInt(r, "month"),
		Year:       formInt(r, "year"),
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Payslip file is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	req.File = file
	req.FileName = fileHeader.Filename
	req.FileSize = fileHeader.Size

	ps, err := p.payslipService.Upload(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payslip uploaded successfully", ps)
}

// Download implements PayslipHandler.
func (p *PayslipHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payslip ID is required", nil)
		return
	}

	ps, file, err := p.payslipService.Download(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ps.FileName))
	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := io.Copy(w, file); err != nil {
		slog.Error("Failed to stream payslip file", "error", err)
	}
}

// GetMyPayslips implements PayslipHandler.
func (p *PayslipHandlerImpl) GetMyPayslips(w http.ResponseWriter, r *http.Request) {
	filter := payslip.PayslipFilter{
		Year:  queryInt(r, "year"),
		Page:  queryInt(r, "page"),
		Limit: queryInt(r, "limit"),
	}

	list, err := p.payslipService.GetMyPayslips(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list.Payslips, &response.Meta{
		Page:       list.Page,
		Limit:      list.Limit,
		TotalItems: list.TotalCount,
		TotalPages: list.TotalPages,
	})
}

// List implements PayslipHandler.
func (p *PayslipHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := payslip.PayslipFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Year:       queryInt(r, "year"),
		Page:       queryInt(r, "page"),
		Limit:      queryInt(r, "limit"),
	}

	list, err := p.payslipService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list.Payslips, &response.Meta{
		Page:       list.Page,
		Limit:      list.Limit,
		TotalItems: list.TotalCount,
		TotalPages: list.TotalPages,
	})
}

// Delete implements PayslipHandler.
func (p *PayslipHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payslip ID is required", nil)
		return
	}

	if err := p.payslipService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip deleted successfully", nil)
}

func formInt(r *http.Request, key string) int {
	v, _ := strconv.Atoi(r.FormValue(key))
	return v
}
