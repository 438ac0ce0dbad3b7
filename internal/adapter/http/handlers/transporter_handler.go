package handlers

import (
	"errors"
	"net/http"

	request "logistics_backoffice/internal/adapter/http/dto/request"
	response "logistics_backoffice/internal/adapter/http/dto/response"
	"logistics_backoffice/internal/domain/entities"
	"logistics_backoffice/internal/usecase"
	"logistics_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

type TransporterHandler struct {
	endpoints recordEndpoints[entities.Transporter, entities.TransporterPatch, response.TransporterResponse]
}

func NewTransporterHandler(uc usecase.ITransporterUseCase) *TransporterHandler {
	return &TransporterHandler{
		endpoints: recordEndpoints[entities.Transporter, entities.TransporterPatch, response.TransporterResponse]{
			usecase:  uc,
			area:     "transporter",
			required: request.MsgTransporterRequiredFields,
			deleted:  "Transporter deleted successfully",
			newPayload: func() recordPayload[entities.Transporter, entities.TransporterPatch] {
				return &request.TransporterRequest{}
			},
			toResponse: response.FromTransporter,
			mapError:   mapTransporterError,
		},
	}
}

func (h *TransporterHandler) ListTransporters(c *gin.Context)  { h.endpoints.list(c) }
func (h *TransporterHandler) GetTransporter(c *gin.Context)    { h.endpoints.get(c) }
func (h *TransporterHandler) CreateTransporter(c *gin.Context) { h.endpoints.create(c) }
func (h *TransporterHandler) UpdateTransporter(c *gin.Context) { h.endpoints.update(c) }
func (h *TransporterHandler) DeleteTransporter(c *gin.Context) { h.endpoints.remove(c) }

func mapTransporterError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingTransporterFields):
		return pkg.NewDomainErrorSimple("MISSING_FIELDS", request.MsgTransporterRequiredFields, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTransporterID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTransporterNotFound):
		return pkg.NewDomainErrorSimple("TRANSPORTER_NOT_FOUND", "No transporter found with that ID", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
