package app

import (
	"go-proyek/internal/attendance"
	"go-proyek/internal/backup"
	"go-proyek/internal/employee"
	"go-proyek/internal/material"
	"go-proyek/internal/messaging/kafka/producer"
	"go-proyek/internal/middleware"
	"go-proyek/internal/payroll"
	"go-proyek/internal/period"
	"go-proyek/internal/pettycash"
	"go-proyek/internal/project"
	"go-proyek/internal/report"
	"go-proyek/internal/store"
	"go-proyek/internal/sync"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func registerModules(
	router *gin.Engine,
	st *store.Store,
	syncer *sync.Syncer,
	pub producer.Publisher,
	rdb *redis.Client,
) error {
	// --- Services ---
	projectService := project.NewService(st)
	periodService := period.NewService(st, pub)
	employeeService := employee.NewService(st, pub)
	attendanceService := attendance.NewService(st)
	materialService := material.NewService(st)
	pettyCashService := pettycash.NewService(st)
	payrollService := payroll.NewService(st)
	reportService := report.NewService(st)
	backupService := backup.NewService(st)

	// --- Handlers ---
	projectHandler := project.NewHandler(projectService)
	periodHandler := period.NewHandler(periodService)
	employeeHandler := employee.NewHandler(employeeService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	materialHandler := material.NewHandler(materialService)
	pettyCashHandler := pettycash.NewHandler(pettyCashService)
	payrollHandler := payroll.NewHandler(payrollService)
	reportHandler := report.NewHandler(reportService)
	backupHandler := backup.NewHandler(backupService)
	syncHandler := sync.NewHandler(syncer)

	// --- Global Middleware ---
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(50, 100))

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	if rdb != nil {
		api.Use(middleware.Idempotency(rdb))
	}
	{
		project.RegisterRoutes(api, projectHandler)
		period.RegisterRoutes(api, periodHandler)
		employee.RegisterRoutes(api, employeeHandler)
		attendance.RegisterRoutes(api, attendanceHandler)
		material.RegisterRoutes(api, materialHandler)
		pettycash.RegisterRoutes(api, pettyCashHandler)
		payroll.RegisterRoutes(api, payrollHandler)
		report.RegisterRoutes(api, reportHandler)
		backup.RegisterRoutes(api, backupHandler)
		sync.RegisterRoutes(api, syncHandler)
	}

	return nil
}
