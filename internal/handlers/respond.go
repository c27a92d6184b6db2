package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/balitech/backend/internal/common"
)

// respondError maps a taxonomy error to its HTTP status. Upstream
// errors keep the provider text for operator diagnosis; anything
// internal is logged and, in release mode, collapsed to a generic
// message.
func respondError(c *gin.Context, err error) {
	status := common.HTTPStatus(err)
	message := common.MessageOf(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
		if gin.Mode() == gin.ReleaseMode && common.CodeOf(err) != common.CodeUpstream {
			message = "An unexpected error occurred"
		}
	}
	c.JSON(status, gin.H{"message": message})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
}

// parseID treats an unparseable identifier the same as an unknown
// one: the caller gets the entity's 404.
func parseID(c *gin.Context, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": entity + " not found"})
		return uuid.Nil, false
	}
	return id, true
}
