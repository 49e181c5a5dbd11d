package handlers

import (
	"github.com/gin-gonic/gin"

	"warehouse-ledger/src/apperrors"
)

// respondError maps a service error onto the operation contract:
// {success:false, error_kind, error}.
func respondError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	body := gin.H{
		"success":    false,
		"error_kind": kind,
	}
	if kind != apperrors.KindInternal {
		body["error"] = err.Error()
	} else {
		body["error"] = "internal error"
	}
	c.JSON(apperrors.HTTPStatus(kind), body)
}

func pagination(c *gin.Context) (page, limit int) {
	page = intQuery(c, "page", 1)
	limit = intQuery(c, "limit", 50)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}
	return page, limit
}
