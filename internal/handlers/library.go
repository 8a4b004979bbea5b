package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"kitaplik/internal/service"

	"github.com/gin-gonic/gin"
)

const libraryRoute = "/library"

// save persists a library entry for the session user, then redirects to the
// listing. A session username that no longer resolves is skipped silently.
func (h *Handler) save(c *gin.Context) {
	title := c.PostForm("title")
	content := c.PostForm("content")
	link := c.PostForm("link")

	_, err := h.services.Library.Save(c.Request.Context(), sessionUsername(c), title, content, link)
	if err != nil && !errors.Is(err, service.ErrUserNotFound) {
		h.internalError(c, "library_save_failed", err, "username", sessionUsername(c))
		return
	}
	c.Redirect(http.StatusFound, libraryRoute)
}

// library lists the session user's entries, title-ascending.
func (h *Handler) library(c *gin.Context) {
	entries, err := h.services.Library.List(c.Request.Context(), sessionUsername(c))
	if err != nil {
		h.internalError(c, "library_list_failed", err, "username", sessionUsername(c))
		return
	}
	c.HTML(http.StatusOK, "library.html", gin.H{
		"Username": sessionUsername(c),
		"Entries":  entries,
	})
}

// deleteEntry removes an owned entry. Deleting a non-existent or foreign
// entry is a no-op and still redirects to the listing.
func (h *Handler) deleteEntry(c *gin.Context) {
	entryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	if err := h.services.Library.Delete(c.Request.Context(), sessionUsername(c), entryID); err != nil {
		h.internalError(c, "library_delete_failed", err, "entry_id", entryID)
		return
	}
	c.Redirect(http.StatusFound, libraryRoute)
}
