package handlers

import (
	"net/http"
	"strings"

	"kitaplik/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"Username": sessionUsername(c)})
}

func (h *Handler) about(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{"Username": sessionUsername(c)})
}

func (h *Handler) searchPage(c *gin.Context) {
	c.HTML(http.StatusOK, "search.html", gin.H{"Username": sessionUsername(c)})
}

// search renders the mocked results. Empty queries yield no results.
func (h *Handler) search(c *gin.Context) {
	query := strings.TrimSpace(c.PostForm("query"))

	var results []models.Result
	if query != "" {
		results = h.services.Search.Query(query)
	}
	c.HTML(http.StatusOK, "search.html", gin.H{
		"Username": sessionUsername(c),
		"Query":    query,
		"Results":  results,
	})
}

func (h *Handler) askPage(c *gin.Context) {
	c.HTML(http.StatusOK, "ask.html", gin.H{"Username": sessionUsername(c)})
}

// ask proxies the question to the external search API. The service absorbs
// all failures, so this handler has no error path.
func (h *Handler) ask(c *gin.Context) {
	question := strings.TrimSpace(c.PostForm("question"))

	var answers []models.Result
	if question != "" {
		answers = h.services.Answers.Ask(c.Request.Context(), question)
	}
	c.HTML(http.StatusOK, "ask.html", gin.H{
		"Username": sessionUsername(c),
		"Question": question,
		"Answers":  answers,
	})
}
