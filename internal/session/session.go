// Package session wraps gin-contrib/sessions with the login-state helpers the
// handlers need: establish, read and clear the server-side session.
package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	keyUserID    = "USER_ID"
	keyUserEmail = "USER_EMAIL"
)

func SetLoginUser(c *gin.Context, userID, email string) error {
	s := sessions.Default(c)
	s.Set(keyUserID, userID)
	s.Set(keyUserEmail, email)
	return s.Save()
}

func LoginUserID(c *gin.Context) string {
	s := sessions.Default(c)
	if v, ok := s.Get(keyUserID).(string); ok {
		return v
	}
	return ""
}

func LoginUserEmail(c *gin.Context) string {
	s := sessions.Default(c)
	if v, ok := s.Get(keyUserEmail).(string); ok {
		return v
	}
	return ""
}

func IsLogin(c *gin.Context) bool {
	return LoginUserID(c) != ""
}

func Clear(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}
