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

type VehicleHandler struct {
	db    *gorm.DB
	audit *audit.Logger
}

func NewVehicleHandler(db *gorm.DB, auditLogger *audit.Logger) *VehicleHandler {
	return &VehicleHandler{
		db:    db,
		audit: auditLogger,
	}
}

// --------- Requests ---------

type CreateVehicleRequest struct {
	Make          string `json:"make" binding:"required"`
	Model         string `json:"model" binding:"required"`
	Year          string `json:"year" binding:"required"`
	Color         string `json:"color" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required"`
}

// --------- Handlers ---------

func (h *VehicleHandler) Create(c *gin.Context) {
	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_data", "Missing data.")
		return
	}

	email := validators.Normalize(req.CustomerEmail)

	var customer models.Customer
	if err := h.db.Where("email = ?", email).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "customer_not_found", "Customer email not found.")
			return
		}
		httperr.Internal(c, "failed_to_lookup_customer", "Could not look up customer.")
		return
	}

	vehicle := models.Vehicle{
		Make:       req.Make,
		Model:      req.Model,
		Year:       req.Year,
		Color:      req.Color,
		CustomerID: customer.ID,
	}

	if err := h.db.Create(&vehicle).Error; err != nil {
		httperr.Internal(c, "failed_to_create_vehicle", "Could not create vehicle.")
		return
	}
	vehicle.Customer = customer

	h.audit.Log(nil, "vehicle_created", "vehicle", &vehicle.ID, nil)

	httpresp.Created(c, vehicle)
}

func (h *VehicleHandler) List(c *gin.Context) {
	var vehicles []models.Vehicle
	if err := h.db.
		Preload("Customer").
		Order("created_at ASC").
		Find(&vehicles).Error; err != nil {
		httperr.Internal(c, "failed_to_list_vehicles", "Could not list vehicles.")
		return
	}
	httpresp.OK(c, vehicles)
}

func (h *VehicleHandler) ListByCustomer(c *gin.Context) {
	email := validators.Normalize(c.Param("customer_email"))

	var customer models.Customer
	if err := h.db.Where("email = ?", email).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "customer_not_found", "Customer not found.")
			return
		}
		httperr.Internal(c, "failed_to_lookup_customer", "Could not look up customer.")
		return
	}

	// Zero vehicles is a valid answer for a known customer.
	var vehicles []models.Vehicle
	if err := h.db.
		Preload("Customer").
		Where("customer_id = ?", customer.ID).
		Order("created_at ASC").
		Find(&vehicles).Error; err != nil {
		httperr.Internal(c, "failed_to_list_vehicles", "Could not list vehicles.")
		return
	}
	httpresp.OK(c, vehicles)
}
