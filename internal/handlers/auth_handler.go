package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/garagehub/autoshop-api/internal/config"
	"github.com/garagehub/autoshop-api/internal/dto"
	"github.com/garagehub/autoshop-api/internal/httperr"
	"github.com/garagehub/autoshop-api/internal/httpresp"
	"github.com/garagehub/autoshop-api/internal/models"
	"github.com/garagehub/autoshop-api/internal/session"
	"github.com/garagehub/autoshop-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email and password required.")
		return
	}

	email := validators.Normalize(req.Email)
	if !validators.IsEmailShapeValid(email) {
		httperr.BadRequest(c, "invalid_email", "Email address is not valid.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_registered", "Email already registered.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process password.")
		return
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := h.db.Create(&user).Error; err != nil {
		// The unique index closes the race the count check leaves open.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.BadRequest(c, "email_already_registered", "Email already registered.")
			return
		}
		httperr.Internal(c, "failed_to_create_user", "Could not register user.")
		return
	}

	httpresp.Message(c, http.StatusCreated, "User registered successfully.")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing email or password.")
		return
	}

	email := validators.Normalize(req.Email)

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
			return
		}
		httperr.Internal(c, "internal_error", "Could not log in.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue token.")
		return
	}

	if err := session.SetLoginUser(c, user.ID, user.Email); err != nil {
		httperr.Internal(c, "failed_to_save_session", "Could not establish session.")
		return
	}

	httpresp.OK(c, gin.H{
		"access_token": token,
		"user":         dto.NewUserDTO(&user),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := session.Clear(c); err != nil {
		httperr.Internal(c, "failed_to_clear_session", "Could not log out.")
		return
	}
	httpresp.Message(c, http.StatusOK, "Logout successful.")
}

func (h *AuthHandler) Protected(c *gin.Context) {
	email := session.LoginUserEmail(c)
	httpresp.Message(c, http.StatusOK, fmt.Sprintf("You are logged in as %s", email))
}

func (h *AuthHandler) ListUsers(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("created_at ASC").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Could not list users.")
		return
	}
	httpresp.OK(c, dto.NewUserListDTO(users))
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
