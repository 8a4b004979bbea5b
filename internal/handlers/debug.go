package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const msgNoUsers = "Kayıtlı kullanıcı yok."

// debugUsers lists all registered usernames. It sits behind the session gate
// like every other page route.
//
// @Summary      List registered usernames
// @Tags         debug
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, users"
// @Failure      500  {object}  map[string]string
// @Router       /_debug_users [get]
func (h *Handler) debugUsers(c *gin.Context) {
	names, err := h.services.ListUsernames()
	if err != nil {
		if h.log != nil {
			h.log.Errorw("debug_users_failed", "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}
	if len(names) == 0 {
		c.String(http.StatusOK, msgNoUsers)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(names),
		"users": names,
	})
}
