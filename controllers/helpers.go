package controllers

import (
	"strconv"
	"strings"

	apperrors "nexustech/errors"
	"nexustech/middleware"
	"nexustech/response"
	"nexustech/types"

	"github.com/gin-gonic/gin"
)

func parseID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.Validation("Invalid id")
	}
	return uint(id), nil
}

// principal fetches the caller or answers 401 when the route was not authenticated
func principal(c *gin.Context) (*types.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Unauthorized(c)
		return nil, false
	}
	return p, true
}

func sameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
