package handlers

import (
	"errors"
	"net/http"

	"kitaplik/internal/service"

	"github.com/gin-gonic/gin"
)

// User-facing auth messages. The login failure text is deliberately identical
// for unknown username and wrong password.
const (
	msgEmptyRegister  = "Kullanıcı adı ve şifre boş olamaz."
	msgEmptyLogin     = "Kullanıcı adı ve şifre girin."
	msgUsernameTaken  = "Bu kullanıcı adı zaten alınmış."
	msgBadCredentials = "Kullanıcı adı veya şifre yanlış."
)

// sessionCookieMaxAge matches the session token TTL (24h).
const sessionCookieMaxAge = 24 * 60 * 60

func (h *Handler) registerForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

func (h *Handler) register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	token, err := h.services.SignUp(username, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCredentials):
			c.HTML(http.StatusOK, "register.html", gin.H{"Error": msgEmptyRegister})
		case errors.Is(err, service.ErrUsernameTaken):
			if h.log != nil {
				h.log.Infow("auth_sign_up_duplicate", "username", username)
			}
			c.HTML(http.StatusOK, "register.html", gin.H{"Error": msgUsernameTaken})
		default:
			h.internalError(c, "auth_sign_up_failed", err, "username", username)
		}
		return
	}

	h.setSessionCookie(c, token)
	c.Redirect(http.StatusFound, homeRoute)
}

func (h *Handler) loginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Next": c.Query("next")})
}

func (h *Handler) login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	token, err := h.services.SignIn(username, password)
	if err != nil {
		msg := msgBadCredentials
		if errors.Is(err, service.ErrEmptyCredentials) {
			msg = msgEmptyLogin
		} else if !errors.Is(err, service.ErrInvalidCredentials) {
			// Unexpected failure (e.g. storage); logged, but the form shows
			// the same generic message.
			if h.log != nil {
				h.log.Errorw("auth_sign_in_failed", "err", err, "username", username)
			}
		}
		c.HTML(http.StatusOK, "login.html", gin.H{"Error": msg, "Next": c.Query("next")})
		return
	}

	h.setSessionCookie(c, token)
	c.Redirect(http.StatusFound, safeNext(c.Query("next")))
}

func (h *Handler) logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.Redirect(http.StatusFound, loginRoute)
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, token, sessionCookieMaxAge, "/", "", false, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}
