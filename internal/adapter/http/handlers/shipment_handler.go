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

// ShipmentHandler handles HTTP requests for shipments.
type ShipmentHandler struct {
	usecase usecase.IShipmentUseCase
}

func NewShipmentHandler(uc usecase.IShipmentUseCase) *ShipmentHandler {
	return &ShipmentHandler{usecase: uc}
}

// ListShipments godoc
// @Summary      List active shipments
// @Tags         shipments
// @Produce      json
// @Param        page    query  int     false  "Page (default 1)"
// @Param        limit   query  int     false  "Page size (default 10)"
// @Param        sort    query  string  false  "Sort keys, e.g. -createdAt"
// @Param        fields  query  string  false  "Comma separated projection"
// @Success      200  {object}  response.Envelope
// @Security     Bearer
// @Router       /shipments [get]
func (h *ShipmentHandler) ListShipments(c *gin.Context) {
	q, ok := listQuery(c)
	if !ok {
		return
	}
	page, err := h.usecase.List(c.Request.Context(), q)
	if err != nil {
		writeError(c, mapShipmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.List(page, q.Fields, response.FromShipment))
}

// GetShipmentAnalytics godoc
// @Summary      Shipment counts by status and value by currency
// @Tags         shipments
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Security     Bearer
// @Router       /shipments/analytics [get]
func (h *ShipmentHandler) GetShipmentAnalytics(c *gin.Context) {
	a, err := h.usecase.Analytics(c.Request.Context())
	if err != nil {
		writeError(c, mapShipmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.Success(response.FromShipmentAnalytics(a)))
}

// GetShipment godoc
// @Summary      Get a shipment with its transporter
// @Tags         shipments
// @Produce      json
// @Param        id  path  string  true  "Shipment id"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /shipments/{id} [get]
func (h *ShipmentHandler) GetShipment(c *gin.Context) {
	s, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapShipmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.Success(response.FromShipment(s)))
}

// CreateShipment godoc
// @Summary      Create a shipment
// @Description  shipmentId, batchNo and trackingNumber are generated; totalValue is derived from products.
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Param        body  body  request.ShipmentRequest  true  "Shipment"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /shipments [post]
func (h *ShipmentHandler) CreateShipment(c *gin.Context) {
	var payload request.ShipmentRequest
	if !bindJSON(c, "shipment", &payload) {
		return
	}
	if !requireFields(c, payload.HasRequired(), request.MsgShipmentRequiredFields) {
		return
	}

	s, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapShipmentError(err))
		return
	}
	log.Printf("[shipment][handler] created id=%s shipment_id=%s", s.ID, s.ShipmentID)
	c.JSON(http.StatusCreated, response.Success(response.FromShipment(s)))
}

// UpdateShipment godoc
// @Summary      Update a shipment
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "Shipment id"
// @Param        body  body  request.ShipmentRequest  true  "Fields to change"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /shipments/{id} [put]
func (h *ShipmentHandler) UpdateShipment(c *gin.Context) {
	var payload request.ShipmentRequest
	if !bindJSON(c, "shipment", &payload) {
		return
	}
	s, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeError(c, mapShipmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.Success(response.FromShipment(s)))
}

// UpdateShipmentStatus godoc
// @Summary      Change the status of a shipment
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "Shipment id"
// @Param        body  body  request.StatusRequest  true  "New status"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /shipments/{id}/status [put]
func (h *ShipmentHandler) UpdateShipmentStatus(c *gin.Context) {
	var payload request.StatusRequest
	if !bindJSON(c, "shipment", &payload) {
		return
	}
	if !requireFields(c, payload.Value() != "", "Please provide status") {
		return
	}
	s, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.ShipmentStatus(payload.Value()))
	if err != nil {
		writeError(c, mapShipmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.Success(response.FromShipment(s)))
}

// DeleteShipment godoc
// @Summary      Soft delete a shipment
// @Tags         shipments
// @Produce      json
// @Param        id  path  string  true  "Shipment id"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /shipments/{id} [delete]
func (h *ShipmentHandler) DeleteShipment(c *gin.Context) {
	s, err := h.usecase.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapShipmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.SuccessMessage("Shipment deleted successfully", response.FromShipment(s)))
}

func mapShipmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingShipmentFields):
		return pkg.NewDomainErrorSimple("MISSING_FIELDS", request.MsgShipmentRequiredFields, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidShipmentID),
		errors.Is(err, usecase.ErrInvalidShipmentStatus),
		errors.Is(err, usecase.ErrInvalidShipmentItems):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrShipmentNotFound):
		return pkg.NewDomainErrorSimple("SHIPMENT_NOT_FOUND", "No shipment found with that ID", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
