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

type PartnershipAccountHandler struct {
	endpoints recordEndpoints[entities.PartnershipAccount, entities.PartnershipAccountPatch, response.PartnershipAccountResponse]
}

func NewPartnershipAccountHandler(uc usecase.IPartnershipAccountUseCase) *PartnershipAccountHandler {
	return &PartnershipAccountHandler{
		endpoints: recordEndpoints[entities.PartnershipAccount, entities.PartnershipAccountPatch, response.PartnershipAccountResponse]{
			usecase:  uc,
			area:     "partnership",
			required: request.MsgPartnershipAccountRequiredFields,
			deleted:  "Partnership account deleted successfully",
			newPayload: func() recordPayload[entities.PartnershipAccount, entities.PartnershipAccountPatch] {
				return &request.PartnershipAccountRequest{}
			},
			toResponse: response.FromPartnershipAccount,
			mapError:   mapPartnershipAccountError,
		},
	}
}

func (h *PartnershipAccountHandler) ListPartnershipAccounts(c *gin.Context)  { h.endpoints.list(c) }
func (h *PartnershipAccountHandler) GetPartnershipAccount(c *gin.Context)    { h.endpoints.get(c) }
func (h *PartnershipAccountHandler) CreatePartnershipAccount(c *gin.Context) { h.endpoints.create(c) }
func (h *PartnershipAccountHandler) UpdatePartnershipAccount(c *gin.Context) { h.endpoints.update(c) }
func (h *PartnershipAccountHandler) DeletePartnershipAccount(c *gin.Context) { h.endpoints.remove(c) }

func mapPartnershipAccountError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingPartnershipAccountField):
		return pkg.NewDomainErrorSimple("MISSING_FIELDS", request.MsgPartnershipAccountRequiredFields, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPartnershipAccountID),
		errors.Is(err, usecase.ErrInvalidSharePercentage),
		errors.Is(err, usecase.ErrNegativeAccountAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPartnershipAccountNotFound):
		return pkg.NewDomainErrorSimple("PARTNERSHIP_ACCOUNT_NOT_FOUND", "No partnership account found with that ID", http.StatusNotFound)
	default:
		return internalError(err)
	}
}

type PropertyAccountHandler struct {
	endpoints recordEndpoints[entities.PropertyAccount, entities.PropertyAccountPatch, response.PropertyAccountResponse]
}

func NewPropertyAccountHandler(uc usecase.IPropertyAccountUseCase) *PropertyAccountHandler {
	return &PropertyAccountHandler{
		endpoints: recordEndpoints[entities.PropertyAccount, entities.PropertyAccountPatch, response.PropertyAccountResponse]{
			usecase:  uc,
			area:     "property",
			required: request.MsgPropertyAccountRequiredFields,
			deleted:  "Property account deleted successfully",
			newPayload: func() recordPayload[entities.PropertyAccount, entities.PropertyAccountPatch] {
				return &request.PropertyAccountRequest{}
			},
			toResponse: response.FromPropertyAccount,
			mapError:   mapPropertyAccountError,
		},
	}
}

func (h *PropertyAccountHandler) ListPropertyAccounts(c *gin.Context)  { h.endpoints.list(c) }
func (h *PropertyAccountHandler) GetPropertyAccount(c *gin.Context)    { h.endpoints.get(c) }
func (h *PropertyAccountHandler) CreatePropertyAccount(c *gin.Context) { h.endpoints.create(c) }
func (h *PropertyAccountHandler) UpdatePropertyAccount(c *gin.Context) { h.endpoints.update(c) }
func (h *PropertyAccountHandler) DeletePropertyAccount(c *gin.Context) { h.endpoints.remove(c) }

func mapPropertyAccountError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingPropertyAccountField):
		return pkg.NewDomainErrorSimple("MISSING_FIELDS", request.MsgPropertyAccountRequiredFields, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPropertyAccountID),
		errors.Is(err, usecase.ErrNegativeAccountAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPropertyAccountNotFound):
		return pkg.NewDomainErrorSimple("PROPERTY_ACCOUNT_NOT_FOUND", "No property account found with that ID", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
