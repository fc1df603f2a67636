package main

import (
	"fmt"
	"net/http"

	"github.com/gajikita/payroll-backend-go/internal/config"
	appHTTP "github.com/gajikita/payroll-backend-go/internal/handler/http"
	"github.com/gajikita/payroll-backend-go/internal/pkg/database"
	"github.com/gajikita/payroll-backend-go/internal/pkg/jwt"
	"github.com/gajikita/payroll-backend-go/internal/repository/postgresql"
	adjustmentService "github.com/gajikita/payroll-backend-go/internal/service/adjustment"
	announcementService "github.com/gajikita/payroll-backend-go/internal/service/announcement"
	authService "github.com/gajikita/payroll-backend-go/internal/service/auth"
	companyService "github.com/gajikita/payroll-backend-go/internal/service/company"
	dashboardService "github.com/gajikita/payroll-backend-go/internal/service/dashboard"
	employeeService "github.com/gajikita/payroll-backend-go/internal/service/employee"
	leaveService "github.com/gajikita/payroll-backend-go/internal/service/leave"
	overtimeService "github.com/gajikita/payroll-backend-go/internal/service/overtime"
	payrollService "github.com/gajikita/payroll-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	adjustmentRepo := postgresql.NewAdjustmentRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	announcementRepo := postgresql.NewAnnouncementRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, userRepo, jwtRepo, jwtService)
	companySvc := companyService.NewCompanyService(db, companyRepo, leaveTypeRepo, payrollRepo, cfg.Payroll.DefaultCutoffDay)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveTypeRepo, leaveBalanceRepo, leaveRequestRepo, employeeRepo, cfg.Payroll.BulkConcurrency)
	overtimeSvc := overtimeService.NewOvertimeService(overtimeRepo, employeeRepo)
	adjustmentSvc := adjustmentService.NewAdjustmentService(adjustmentRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo, overtimeRepo, adjustmentRepo, cfg.Payroll.DefaultCutoffDay)
	announcementSvc := announcementService.NewAnnouncementService(announcementRepo)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, payrollRepo, leaveRequestRepo, overtimeRepo, adjustmentRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	companyHandler := appHTTP.NewCompanyHandler(companySvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	overtimeHandler := appHTTP.NewOvertimeHandler(overtimeSvc)
	adjustmentHandler := appHTTP.NewAdjustmentHandler(adjustmentSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	announcementHandler := appHTTP.NewAnnouncementHandler(announcementSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		companyHandler,
		employeeHandler,
		leaveHandler,
		overtimeHandler,
		adjustmentHandler,
		payrollHandler,
		announcementHandler,
		dashboardHandler,
		[]string{cfg.App.FrontendURL},
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
