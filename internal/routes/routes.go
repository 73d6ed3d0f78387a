package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/garagehub/autoshop-api/internal/audit"
	"github.com/garagehub/autoshop-api/internal/config"
	"github.com/garagehub/autoshop-api/internal/handlers"
	infraRepo "github.com/garagehub/autoshop-api/internal/infra/repository"
	"github.com/garagehub/autoshop-api/internal/middleware"
	ucRepair "github.com/garagehub/autoshop-api/internal/usecase/repair"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repairRepo := infraRepo.NewRepairGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — REPAIRS
	// ======================================================
	createRepairUC := ucRepair.NewCreateRepair(repairRepo, auditDispatcher)
	updateRepairStatusUC := ucRepair.NewUpdateRepairStatus(repairRepo, auditDispatcher)
	listRepairsUC := ucRepair.NewListRepairs(repairRepo)
	listRepairsByVehicleUC := ucRepair.NewListRepairsByVehicle(repairRepo)
	countInShopUC := ucRepair.NewCountInShopRepairs(repairRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	customerHandler := handlers.NewCustomerHandler(db, auditLogger)
	vehicleHandler := handlers.NewVehicleHandler(db, auditLogger)
	employeeHandler := handlers.NewEmployeeHandler(db, auditLogger)

	repairHandler := handlers.NewRepairHandler(
		createRepairUC,
		updateRepairStatusUC,
		listRepairsUC,
		listRepairsByVehicleUC,
		countInShopUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.GET("/users", authHandler.ListUsers)

		sessionOnly := api.Group("/")
		sessionOnly.Use(middleware.SessionRequired())
		{
			sessionOnly.GET("/logout", authHandler.Logout)
			sessionOnly.GET("/protected", authHandler.Protected)
		}

		// ------------------------------
		// CUSTOMERS
		// ------------------------------
		api.POST("/customers", customerHandler.Create)
		api.GET("/customers", customerHandler.List)

		// ------------------------------
		// VEHICLES
		// ------------------------------
		api.POST("/vehicles", vehicleHandler.Create)
		api.GET("/vehicles", vehicleHandler.List)
		api.GET("/vehicles/:customer_email", vehicleHandler.ListByCustomer)

		// ------------------------------
		// EMPLOYEES
		// ------------------------------
		api.POST("/employees", employeeHandler.Create)
		api.GET("/employees", employeeHandler.List)
		api.GET("/employees/:email", employeeHandler.GetByEmail)

		// ------------------------------
		// REPAIRS
		// ------------------------------
		api.POST("/repairs", repairHandler.Create)
		api.GET("/repairs", repairHandler.List)
		api.PATCH("/repairs/:id/status", repairHandler.UpdateStatus)
		api.GET("/repairs/vehicle/:vehicle_id", repairHandler.ListByVehicle)
		api.GET("/repairs/in-shop/count", repairHandler.CountInShop)

		// ------------------------------
		// AUDIT (BEARER TOKEN)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
