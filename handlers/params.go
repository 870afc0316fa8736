package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseID reads an integer path parameter. Ids are postgres INTEGER columns,
// so anything outside int32 is rejected before a query is issued.
func parseID(c *gin.Context, name string) (int, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return int(id), nil
}
