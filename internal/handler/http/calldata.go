package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stafflow/hr-backend-go/internal/domain/calldata"
	"github.com/stafflow/hr-backend-go/internal/handler/http/response"
)

type CallDataHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetMyCallData(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CallDataHandlerImpl struct {
	callDataService calldata.CallDataService
}

func NewCallDataHandler(callDataService calldata.CallDataService) CallDataHandler {
	return &CallDataHandlerImpl{callDataService: callDataService}
}

// Submit implements CallDataHandler.
func (c *CallDataHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req calldata.SubmitCallDataRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit call data decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := c.callDataService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Call data saved successfully", record)
}

// Get implements CallDataHandler.
func (c *CallDataHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Call data ID is required", nil)
		return
	}

	record, err := c.callDataService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// GetMyCallData implements CallDataHandler.
func (c *CallDataHandlerImpl) GetMyCallData(w http.ResponseWriter, r *http.Request) {
	filter := calldata.MyCallDataFilter{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
		Page:      queryInt(r, "page"),
		Limit:     queryInt(r, "limit"),
	}

	list, err := c.callDataService.GetMyCallData(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list.Records, &response.Meta{
		Page:       list.Page,
		Limit:      list.Limit,
		TotalItems: list.TotalCount,
		TotalPages: list.TotalPages,
	})
}

// List implements CallDataHandler.
func (c *CallDataHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := calldata.CallDataFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
		Page:       queryInt(r, "page"),
		Limit:      queryInt(r, "limit"),
	}

	list, err := c.callDataService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list.Records, &response.Meta{
		Page:       list.Page,
		Limit:      list.Limit,
		TotalItems: list.TotalCount,
		TotalPages: list.TotalPages,
	})
}

// Delete implements CallDataHandler.
func (c *CallDataHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Call data ID is required", nil)
		return
	}

	if err := c.callDataService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Call data deleted successfully", nil)
}
