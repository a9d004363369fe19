package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// stripJSONExtension removes .json extension from a parameter if present
func stripJSONExtension(c *gin.Context, paramName string) {
	value := c.Param(paramName)
	if strings.HasSuffix(value, ".json") {
		for i, param := range c.Params {
			if param.Key == paramName {
				c.Params[i].Value = strings.TrimSuffix(value, ".json")
				break
			}
		}
	}
}

// writeJSON sends body with the headers every addon response carries.
func writeJSON(c *gin.Context, status int, body interface{}) {
	c.Header("Cache-Control", "no-cache")
	c.JSON(status, body)
}
