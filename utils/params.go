package utils

import (
	"strconv"
	"strings"

	"travel-backend/apperrors"

	"github.com/gin-gonic/gin"
)

// ParamID reads a positive numeric path parameter.
func ParamID(c *gin.Context, name string) (uint, error) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.Validationf("invalid %s", name)
	}
	return uint(id), nil
}

// QueryUint reads an optional positive numeric query parameter; nil when absent.
func QueryUint(c *gin.Context, name string) (*uint, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return nil, apperrors.Validationf("invalid %s", name)
	}
	id := uint(v)
	return &id, nil
}
