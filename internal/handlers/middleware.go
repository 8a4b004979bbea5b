package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookieName = "session"

	ctxUsername  = "username"
	ctxUserID    = "userId"
	ctxRequestID = "requestId"

	loginRoute = "/login"
	homeRoute  = "/"

	requestIDHeader = "X-Request-Id"
)

// sessionMiddleware gates every page route. Without a valid session cookie
// the request is redirected to the login page carrying the originally
// requested path as a return hint.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	token, err := c.Cookie(sessionCookieName)
	if err != nil || token == "" {
		h.redirectToLogin(c)
		return
	}

	su, err := h.services.ParseSession(token)
	if err != nil {
		h.redirectToLogin(c)
		return
	}

	// store the authenticated identity in Gin context
	c.Set(ctxUsername, su.Username)
	c.Set(ctxUserID, su.ID)
	c.Next()
}

func (h *Handler) redirectToLogin(c *gin.Context) {
	next := url.QueryEscape(c.Request.URL.Path)
	c.Redirect(http.StatusFound, loginRoute+"?next="+next)
	c.Abort()
}

// safeNext validates a post-login redirect target. Only relative paths are
// honored; anything else falls back to the landing route.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") {
		return next
	}
	return homeRoute
}

// sessionUsername returns the username stored by sessionMiddleware.
func sessionUsername(c *gin.Context) string {
	return c.GetString(ctxUsername)
}

// requestLogMiddleware propagates an incoming request id or generates one,
// and emits a structured log line per request.
func (h *Handler) requestLogMiddleware(c *gin.Context) {
	requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header(requestIDHeader, requestID)
	c.Set(ctxRequestID, requestID)

	start := time.Now()
	c.Next()

	if h.log != nil {
		h.log.Infow("http_request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", requestID,
		)
	}
}
