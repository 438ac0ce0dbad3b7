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

type OwnerHandler struct {
	endpoints recordEndpoints[entities.Owner, entities.OwnerPatch, response.OwnerResponse]
}

func NewOwnerHandler(uc usecase.IOwnerUseCase) *OwnerHandler {
	return &OwnerHandler{
		endpoints: recordEndpoints[entities.Owner, entities.OwnerPatch, response.OwnerResponse]{
			usecase:  uc,
			area:     "owner",
			required: request.MsgOwnerRequiredFields,
			deleted:  "Owner deleted successfully",
			newPayload: func() recordPayload[entities.Owner, entities.OwnerPatch] {
				return &request.OwnerRequest{}
			},
			toResponse: response.FromOwner,
			mapError:   mapOwnerError,
		},
	}
}

func (h *OwnerHandler) ListOwners(c *gin.Context)  { h.endpoints.list(c) }
func (h *OwnerHandler) GetOwner(c *gin.Context)    { h.endpoints.get(c) }
func (h *OwnerHandler) CreateOwner(c *gin.Context) { h.endpoints.create(c) }
func (h *OwnerHandler) UpdateOwner(c *gin.Context) { h.endpoints.update(c) }
func (h *OwnerHandler) DeleteOwner(c *gin.Context) { h.endpoints.remove(c) }

func mapOwnerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingOwnerField):
		return pkg.NewDomainErrorSimple("MISSING_FIELDS", request.MsgOwnerRequiredFields, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOwnerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOwnerNotFound):
		return pkg.NewDomainErrorSimple("OWNER_NOT_FOUND", "No owner found with that ID", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
