package handlers

import (
	"errors"
	"log"
	"net/http"

	request "logistics_backoffice/internal/adapter/http/dto/request"
	response "logistics_backoffice/internal/adapter/http/dto/response"
	"logistics_backoffice/internal/domain/entities"
	"logistics_backoffice/internal/usecase"
	"logistics_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

// LogisticsExpenseHandler handles HTTP requests for logistics expenses.
//
// totalCost and amountInPKR in every response are the values derived on the
// last write, never client input.
type LogisticsExpenseHandler struct {
	usecase usecase.ILogisticsExpenseUseCase
}

func NewLogisticsExpenseHandler(uc usecase.ILogisticsExpenseUseCase) *LogisticsExpenseHandler {
	return &LogisticsExpenseHandler{usecase: uc}
}

// ListLogisticsExpenses godoc
// @Summary      List active logistics expenses
// @Tags         logistics-expenses
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Security     Bearer
// @Router       /logistics-expenses [get]
func (h *LogisticsExpenseHandler) ListLogisticsExpenses(c *gin.Context) {
	q, ok := listQuery(c)
	if !ok {
		return
	}
	page, err := h.usecase.List(c.Request.Context(), q)
	if err != nil {
		writeError(c, mapLogisticsExpenseError(err))
		return
	}
	c.JSON(http.StatusOK, response.List(page, q.Fields, response.FromLogisticsExpense))
}

// ListLogisticsExpensesByRoute godoc
// @Summary      List logistics expenses of one route
// @Tags         logistics-expenses
// @Produce      json
// @Param        route  path  string  true  "Route"
// @Success      200  {object}  response.Envelope
// @Security     Bearer
// @Router       /logistics-expenses/route/{route} [get]
func (h *LogisticsExpenseHandler) ListLogisticsExpensesByRoute(c *gin.Context) {
	q, ok := listQuery(c)
	if !ok {
		return
	}
	page, err := h.usecase.ListByRoute(c.Request.Context(), c.Param("route"), q)
	if err != nil {
		writeError(c, mapLogisticsExpenseError(err))
		return
	}
	c.JSON(http.StatusOK, response.List(page, q.Fields, response.FromLogisticsExpense))
}

// GetLogisticsExpense godoc
// @Summary      Get a logistics expense with its shipment and transporter
// @Tags         logistics-expenses
// @Produce      json
// @Param        id  path  string  true  "Expense id"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /logistics-expenses/{id} [get]
func (h *LogisticsExpenseHandler) GetLogisticsExpense(c *gin.Context) {
	e, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapLogisticsExpenseError(err))
		return
	}
	c.JSON(http.StatusOK, response.Success(response.FromLogisticsExpense(e)))
}

// CreateLogisticsExpense godoc
// @Summary      Record a logistics expense
// @Tags         logistics-expenses
// @Accept       json
// @Produce      json
// @Param        body  body  request.LogisticsExpenseRequest  true  "Expense"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /logistics-expenses [post]
func (h *LogisticsExpenseHandler) CreateLogisticsExpense(c *gin.Context) {
	var payload request.LogisticsExpenseRequest
	if !bindJSON(c, "expense", &payload) {
		return
	}
	if !requireFields(c, payload.HasRequired(), request.MsgLogisticsExpenseRequiredFields) {
		return
	}

	e, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapLogisticsExpenseError(err))
		return
	}
	log.Printf("[expense][handler] created id=%s total_cost=%s", e.ID, e.TotalCost)
	c.JSON(http.StatusCreated, response.Success(response.FromLogisticsExpense(e)))
}

// UpdateLogisticsExpense godoc
// @Summary      Update a logistics expense and derive its totals again
// @Tags         logistics-expenses
// @Accept       json
// @Produce      json
// @Param        id    path  string                           true  "Expense id"
// @Param        body  body  request.LogisticsExpenseRequest  true  "Fields to change"
// @Success      200  {object}  response.Envelope
// @Security     Bearer
// @Router       /logistics-expenses/{id} [put]
func (h *LogisticsExpenseHandler) UpdateLogisticsExpense(c *gin.Context) {
	var payload request.LogisticsExpenseRequest
	if !bindJSON(c, "expense", &payload) {
		return
	}
	e, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeError(c, mapLogisticsExpenseError(err))
		return
	}
	c.JSON(http.StatusOK, response.Success(response.FromLogisticsExpense(e)))
}

// UpdateLogisticsExpenseStatus godoc
// @Summary      Change the transport status of an expense
// @Tags         logistics-expenses
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "Expense id"
// @Param        body  body  request.StatusRequest  true  "New status"
// @Success      200  {object}  response.Envelope
// @Security     Bearer
// @Router       /logistics-expenses/{id}/status [put]
func (h *LogisticsExpenseHandler) UpdateLogisticsExpenseStatus(c *gin.Context) {
	var payload request.StatusRequest
	if !bindJSON(c, "expense", &payload) {
		return
	}
	if !requireFields(c, payload.Value() != "", "Please provide status") {
		return
	}
	e, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.TransportStatus(payload.Value()))
	if err != nil {
		writeError(c, mapLogisticsExpenseError(err))
		return
	}
	c.JSON(http.StatusOK, response.Success(response.FromLogisticsExpense(e)))
}

// DeleteLogisticsExpense godoc
// @Summary      Soft delete a logistics expense
// @Tags         logistics-expenses
// @Produce      json
// @Param        id  path  string  true  "Expense id"
// @Success      200  {object}  response.Envelope
// @Security     Bearer
// @Router       /logistics-expenses/{id} [delete]
func (h *LogisticsExpenseHandler) DeleteLogisticsExpense(c *gin.Context) {
	e, err := h.usecase.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapLogisticsExpenseError(err))
		return
	}
	c.JSON(http.StatusOK, response.SuccessMessage("Logistics expense deleted successfully", response.FromLogisticsExpense(e)))
}

func mapLogisticsExpenseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingLogisticsExpenseData):
		return pkg.NewDomainErrorSimple("MISSING_FIELDS", request.MsgLogisticsExpenseRequiredFields, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLogisticsExpenseID),
		errors.Is(err, usecase.ErrNegativeExpenseAmount),
		errors.Is(err, usecase.ErrInvalidTransportStatus),
		errors.Is(err, usecase.ErrInvalidRoute):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLogisticsExpenseNotFound):
		return pkg.NewDomainErrorSimple("LOGISTICS_EXPENSE_NOT_FOUND", "No logistics expense found with that ID", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
