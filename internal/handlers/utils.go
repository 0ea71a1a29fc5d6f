package handlers

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// getIntParam reads an integer query parameter, falling back to a default
// when the parameter is absent or not a number
func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}
