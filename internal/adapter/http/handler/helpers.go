package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Default query parameter values
const (
	DefaultTopGenres = 10
	DefaultMinHeight = 0.5
	DefaultMaxHeight = 3.0
)

// ParseIntQuery extracts an integer query parameter, returning the default
// for missing or unparseable values.
func ParseIntQuery(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(def)))
	if err != nil {
		return def
	}
	return v
}

// ParseFloatQuery extracts a float query parameter, returning the default
// for missing or unparseable values.
func ParseFloatQuery(c *gin.Context, name string, def float64) float64 {
	v, err := strconv.ParseFloat(c.DefaultQuery(name, strconv.FormatFloat(def, 'f', -1, 64)), 64)
	if err != nil {
		return def
	}
	return v
}

// ExtractIntParam extracts an integer parameter from the URL path.
// Returns the parsed value or an error if the parameter is invalid.
func ExtractIntParam(c *gin.Context, param string) (int, error) {
	idStr := c.Param(param)
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", param, err)
	}
	return id, nil
}
