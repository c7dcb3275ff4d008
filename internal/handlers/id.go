package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseID reads the :id path param. Ids are integers end to end, so a
// non-numeric id can never name an existing row.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
