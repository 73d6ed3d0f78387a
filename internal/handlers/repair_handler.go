package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/garagehub/autoshop-api/internal/httperr"
	"github.com/garagehub/autoshop-api/internal/httpresp"
	"github.com/garagehub/autoshop-api/internal/models"
	ucRepair "github.com/garagehub/autoshop-api/internal/usecase/repair"
)

// ======================================================
// HANDLER
// ======================================================

type RepairHandler struct {
	createUC       *ucRepair.CreateRepair
	updateStatusUC *ucRepair.UpdateRepairStatus
	listUC         *ucRepair.ListRepairs
	listByVehicle  *ucRepair.ListRepairsByVehicle
	countInShopUC  *ucRepair.CountInShopRepairs
}

func NewRepairHandler(
	createUC *ucRepair.CreateRepair,
	updateStatusUC *ucRepair.UpdateRepairStatus,
	listUC *ucRepair.ListRepairs,
	listByVehicle *ucRepair.ListRepairsByVehicle,
	countInShopUC *ucRepair.CountInShopRepairs,
) *RepairHandler {
	return &RepairHandler{
		createUC:       createUC,
		updateStatusUC: updateStatusUC,
		listUC:         listUC,
		listByVehicle:  listByVehicle,
		countInShopUC:  countInShopUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateRepairRequest struct {
	Description string `json:"description" binding:"required"`
	Date        string `json:"date" binding:"required"`
	VehicleID   string `json:"vehicle_id" binding:"required"`
	Status      string `json:"status"`
}

type UpdateRepairStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *RepairHandler) Create(c *gin.Context) {
	var req CreateRepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_data", "Missing data.")
		return
	}

	date, err := models.ParseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date format. Use YYYY-MM-DD.")
		return
	}

	rec, err := h.createUC.Execute(c.Request.Context(), req.Description, date, req.VehicleID, req.Status)
	if err != nil {
		if httperr.IsBusiness(err, "vehicle_not_found") {
			httperr.NotFound(c, "vehicle_not_found", "Vehicle not found.")
			return
		}
		httperr.Internal(c, "failed_to_create_repair", "Could not create repair.")
		return
	}

	httpresp.Created(c, rec)
}

// ======================================================
// LIST
// ======================================================

func (h *RepairHandler) List(c *gin.Context) {
	recs, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_repairs", "Could not list repairs.")
		return
	}
	httpresp.OK(c, recs)
}

func (h *RepairHandler) ListByVehicle(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")

	recs, err := h.listByVehicle.Execute(c.Request.Context(), vehicleID)
	if err != nil {
		if httperr.IsBusiness(err, "vehicle_not_found") {
			httperr.NotFound(c, "vehicle_not_found", "Vehicle not found.")
			return
		}
		httperr.Internal(c, "failed_to_list_repairs", "Could not list repairs.")
		return
	}
	httpresp.OK(c, recs)
}

// ======================================================
// STATUS
// ======================================================

func (h *RepairHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req UpdateRepairStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_status", "Missing status field.")
		return
	}

	rec, err := h.updateStatusUC.Execute(c.Request.Context(), id, req.Status)
	if err != nil {
		if httperr.IsBusiness(err, "repair_not_found") {
			httperr.NotFound(c, "repair_not_found", "Repair not found.")
			return
		}
		httperr.Internal(c, "failed_to_update_repair", "Could not update repair.")
		return
	}

	httpresp.OK(c, rec)
}

// ======================================================
// COUNT
// ======================================================

func (h *RepairHandler) CountInShop(c *gin.Context) {
	count, err := h.countInShopUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_count_repairs", "Could not count repairs.")
		return
	}
	httpresp.OK(c, gin.H{"count": count})
}
