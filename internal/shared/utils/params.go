package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"bugtrail/internal/shared/errors"
)

// ParseUintParam parses a positive integer path parameter.
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, errors.NewValidationError("invalid " + name + " parameter")
	}
	return uint(value), nil
}

// ParseUintQuery parses an optional positive integer query parameter,
// returning (0, nil, false) when absent.
func ParseUintQuery(c *gin.Context, name string) (uint, bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false, nil
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false, errors.NewValidationError("invalid " + name + " parameter")
	}
	return uint(value), true, nil
}
