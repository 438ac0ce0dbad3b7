package routes

import (
	"logistics_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathTransporters        = "/transporters"
	PathOwners              = "/owners"
	PathLiabilities         = "/liabilities"
	PathPartnershipAccounts = "/partnership-accounts"
	PathPropertyAccounts    = "/property-accounts"
)

func addAccountingRoutes(
	rg *gin.RouterGroup,
	transporterHandler *handlers.TransporterHandler,
	ownerHandler *handlers.OwnerHandler,
	liabilityHandler *handlers.LiabilityHandler,
	partnershipHandler *handlers.PartnershipAccountHandler,
	propertyHandler *handlers.PropertyAccountHandler,
) {
	transporters := rg.Group(PathTransporters)
	{
		transporters.GET("", transporterHandler.ListTransporters)
		transporters.GET("/:id", transporterHandler.GetTransporter)
		transporters.POST("", transporterHandler.CreateTransporter)
		transporters.PUT("/:id", transporterHandler.UpdateTransporter)
		transporters.DELETE("/:id", transporterHandler.DeleteTransporter)
	}

	owners := rg.Group(PathOwners)
	{
		owners.GET("", ownerHandler.ListOwners)
		owners.GET("/:id", ownerHandler.GetOwner)
		owners.POST("", ownerHandler.CreateOwner)
		owners.PUT("/:id", ownerHandler.UpdateOwner)
		owners.DELETE("/:id", ownerHandler.DeleteOwner)
	}

	liabilities := rg.Group(PathLiabilities)
	{
		liabilities.GET("", liabilityHandler.ListLiabilities)
		liabilities.GET("/:id", liabilityHandler.GetLiability)
		liabilities.POST("", liabilityHandler.CreateLiability)
		liabilities.PUT("/:id", liabilityHandler.UpdateLiability)
		liabilities.DELETE("/:id", liabilityHandler.DeleteLiability)
	}

	partnerships := rg.Group(PathPartnershipAccounts)
	{
		partnerships.GET("", partnershipHandler.ListPartnershipAccounts)
		partnerships.GET("/:id", partnershipHandler.GetPartnershipAccount)
		partnerships.POST("", partnershipHandler.CreatePartnershipAccount)
		partnerships.PUT("/:id", partnershipHandler.UpdatePartnershipAccount)
		partnerships.DELETE("/:id", partnershipHandler.DeletePartnershipAccount)
	}

	properties := rg.Group(PathPropertyAccounts)
	{
		properties.GET("", propertyHandler.ListPropertyAccounts)
		properties.GET("/:id", propertyHandler.GetPropertyAccount)
		properties.POST("", propertyHandler.CreatePropertyAccount)
		properties.PUT("/:id", propertyHandler.UpdatePropertyAccount)
		properties.DELETE("/:id", propertyHandler.DeletePropertyAccount)
	}
}
