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

// LiabilityHandler serves /liabilities. Reads populate the owner.
type LiabilityHandler struct {
	endpoints recordEndpoints[entities.Liability, entities.LiabilityPatch, response.LiabilityResponse]
}

func NewLiabilityHandler(uc usecase.ILiabilityUseCase) *LiabilityHandler {
	return &LiabilityHandler{
		endpoints: recordEndpoints[entities.Liability, entities.LiabilityPatch, response.LiabilityResponse]{
			usecase:  uc,
			area:     "liability",
			required: request.MsgLiabilityRequiredFields,
			deleted:  "Liability deleted successfully",
			newPayload: func() recordPayload[entities.Liability, entities.LiabilityPatch] {
				return &request.LiabilityRequest{}
			},
			toResponse: response.FromLiability,
			mapError:   mapLiabilityError,
		},
	}
}

func (h *LiabilityHandler) ListLiabilities(c *gin.Context) { h.endpoints.list(c) }
func (h *LiabilityHandler) GetLiability(c *gin.Context)    { h.endpoints.get(c) }
func (h *LiabilityHandler) CreateLiability(c *gin.Context) { h.endpoints.create(c) }
func (h *LiabilityHandler) UpdateLiability(c *gin.Context) { h.endpoints.update(c) }
func (h *LiabilityHandler) DeleteLiability(c *gin.Context) { h.endpoints.remove(c) }

func mapLiabilityError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingLiabilityFields):
		return pkg.NewDomainErrorSimple("MISSING_FIELDS", request.MsgLiabilityRequiredFields, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLiabilityID),
		errors.Is(err, usecase.ErrNegativeLiabilityAmount),
		errors.Is(err, usecase.ErrInvalidLiabilityStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLiabilityNotFound):
		return pkg.NewDomainErrorSimple("LIABILITY_NOT_FOUND", "No liability found with that ID", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
