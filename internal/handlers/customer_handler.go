package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/garagehub/autoshop-api/internal/audit"
	"github.com/garagehub/autoshop-api/internal/httperr"
	"github.com/garagehub/autoshop-api/internal/httpresp"
	"github.com/garagehub/autoshop-api/internal/models"
	"github.com/garagehub/autoshop-api/internal/validators"
)

type CustomerHandler struct {
	db    *gorm.DB
	audit *audit.Logger
}

func NewCustomerHandler(db *gorm.DB, auditLogger *audit.Logger) *CustomerHandler {
	return &CustomerHandler{
		db:    db,
		audit: auditLogger,
	}
}

// --------- Requests ---------

type CreateCustomerRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email" binding:"required"`
}

// --------- Handlers ---------

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_data", "Missing data.")
		return
	}

	email := validators.Normalize(req.Email)

	var count int64
	h.db.Model(&models.Customer{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "Email already exists.")
		return
	}

	customer := models.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     email,
	}

	if err := h.db.Create(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_create_customer", "Could not create customer.")
		return
	}

	h.audit.Log(nil, "customer_created", "customer", &customer.ID, nil)

	httpresp.Created(c, customer)
}

func (h *CustomerHandler) List(c *gin.Context) {
	var customers []models.Customer
	if err := h.db.Order("created_at ASC").Find(&customers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_customers", "Could not list customers.")
		return
	}
	httpresp.OK(c, customers)
}
