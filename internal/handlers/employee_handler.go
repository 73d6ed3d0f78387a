package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/garagehub/autoshop-api/internal/audit"
	"github.com/garagehub/autoshop-api/internal/httperr"
	"github.com/garagehub/autoshop-api/internal/httpresp"
	"github.com/garagehub/autoshop-api/internal/models"
	"github.com/garagehub/autoshop-api/internal/validators"
)

type EmployeeHandler struct {
	db    *gorm.DB
	audit *audit.Logger
}

func NewEmployeeHandler(db *gorm.DB, auditLogger *audit.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		db:    db,
		audit: auditLogger,
	}
}

// --------- Requests ---------

type CreateEmployeeRequest struct {
	FirstName    string   `json:"first_name" binding:"required"`
	LastName     string   `json:"last_name" binding:"required"`
	Email        string   `json:"email" binding:"required"`
	Phone        string   `json:"phone" binding:"required"`
	HourlyWage   *float64 `json:"hourly_wage" binding:"required"`
	EmployeeType string   `json:"employee_type" binding:"required"`
}

// --------- Handlers ---------

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_data", "Missing data.")
		return
	}

	email := validators.Normalize(req.Email)

	var count int64
	h.db.Model(&models.Employee{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "Email already exists.")
		return
	}

	employee := models.Employee{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		Phone:        req.Phone,
		HourlyWage:   *req.HourlyWage,
		EmployeeType: req.EmployeeType,
	}

	if err := h.db.Create(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.BadRequest(c, "email_already_exists", "Email already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_employee", "Could not create employee.")
		return
	}

	h.audit.Log(nil, "employee_created", "employee", &employee.ID, nil)

	httpresp.Created(c, employee)
}

func (h *EmployeeHandler) List(c *gin.Context) {
	var employees []models.Employee
	if err := h.db.Order("created_at ASC").Find(&employees).Error; err != nil {
		httperr.Internal(c, "failed_to_list_employees", "Could not list employees.")
		return
	}
	httpresp.OK(c, employees)
}

func (h *EmployeeHandler) GetByEmail(c *gin.Context) {
	email := validators.Normalize(c.Param("email"))

	var employee models.Employee
	if err := h.db.Where("email = ?", email).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "employee_not_found", "Employee not found.")
			return
		}
		httperr.Internal(c, "failed_to_lookup_employee", "Could not look up employee.")
		return
	}
	httpresp.OK(c, employee)
}
