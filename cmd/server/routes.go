package main

import (
	"github.com/gin-gonic/gin"

	"hr-ledger.backend/internal/interfaces/http/handlers"
	"hr-ledger.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler        *handlers.AuthHandler
	adminHandler       *handlers.AdminHandler
	employeeHandler    *handlers.EmployeeHandler
	payrollHandler     *handlers.PayrollHandler
	clientHandler      *handlers.ClientHandler
	salesHandler       *handlers.SalesHandler
	purchaseHandler    *handlers.PurchaseHandler
	tradeHandler       *handlers.TradeHandler
	importHandler      *handlers.ImportHandler
	dashboardHandler   *handlers.DashboardHandler
	authMiddleware     gin.HandlerFunc
	approvalMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/verify-email", d.authHandler.VerifyEmail)
			auth.POST("/resend-code", d.authHandler.ResendCode)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.Refresh)
			auth.POST("/logout", d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
		}

		// Record screens (verified + approved accounts only)
		employees := v1.Group("/employees")
		employees.Use(d.authMiddleware, d.approvalMiddleware)
		{
			employees.POST("", d.employeeHandler.Create)
			employees.GET("", d.employeeHandler.List)
			employees.GET("/export", d.employeeHandler.Export)
		}

		payroll := v1.Group("/payroll")
		payroll.Use(d.authMiddleware, d.approvalMiddleware)
		{
			payroll.POST("", d.payrollHandler.Create)
			payroll.GET("", d.payrollHandler.List)
			payroll.GET("/export", d.payrollHandler.Export)
		}

		clients := v1.Group("/clients")
		clients.Use(d.authMiddleware, d.approvalMiddleware)
		{
			clients.POST("", d.clientHandler.Create)
			clients.GET("", d.clientHandler.List)
			clients.GET("/export", d.clientHandler.Export)
		}

		sales := v1.Group("/sales")
		sales.Use(d.authMiddleware, d.approvalMiddleware)
		{
			sales.POST("", d.salesHandler.Create)
			sales.GET("", d.salesHandler.List)
			sales.GET("/export", d.salesHandler.Export)
		}

		purchases := v1.Group("/purchases")
		purchases.Use(d.authMiddleware, d.approvalMiddleware)
		{
			purchases.POST("", d.purchaseHandler.Create)
			purchases.GET("", d.purchaseHandler.List)
			purchases.GET("/export", d.purchaseHandler.Export)
		}

		trades := v1.Group("/trades")
		trades.Use(d.authMiddleware, d.approvalMiddleware)
		{
			trades.POST("", d.tradeHandler.Create)
			trades.GET("", d.tradeHandler.List)
			trades.GET("/export", d.tradeHandler.Export)
		}

		// Bulk spreadsheet upload
		imports := v1.Group("/imports")
		imports.Use(d.authMiddleware, d.approvalMiddleware)
		{
			imports.POST("/:entity", d.importHandler.Upload)
		}

		// Landing-screen summary
		dashboard := v1.Group("/dashboard")
		dashboard.Use(d.authMiddleware, d.approvalMiddleware)
		{
			dashboard.GET("/stats", d.dashboardHandler.Stats)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, d.approvalMiddleware, middleware.AdminMiddleware())
		{
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.GET("/users/pending", d.adminHandler.ListPending)
			admin.PUT("/users/:id/approval", d.adminHandler.SetApproval)
			admin.PUT("/users/:id/role", d.adminHandler.SetRole)
		}
	}
}
