package handlers

import (
	"log"
	"net/http"

	"logistics_backoffice/internal/domain/query"
	"logistics_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidListQuery = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid list query", http.StatusBadRequest)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// bindJSON decodes the body into dst. Malformed bodies surface as 500 with
// the decoder error as message.
func bindJSON(c *gin.Context, area string, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		log.Printf("[%s][handler] bind failed err=%v", area, err)
		writeError(c, internalError(err))
		return false
	}
	return true
}

func requireFields(c *gin.Context, ok bool, message string) bool {
	if !ok {
		writeError(c, pkg.NewDomainErrorSimple("MISSING_FIELDS", message, http.StatusBadRequest))
		return false
	}
	return true
}

func listQuery(c *gin.Context) (query.ListQuery, bool) {
	q, err := query.Parse(c.Request.URL.Query())
	if err != nil {
		writeError(c, errInvalidListQuery)
		return query.ListQuery{}, false
	}
	return q, true
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
