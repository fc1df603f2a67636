package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/gajikita/payroll-backend-go/internal/handler/http/middleware"
	"github.com/gajikita/payroll-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	companyHandler CompanyHandler,
	employeeHandler EmployeeHandler,
	leaveHandler LeaveHandler,
	overtimeHandler OvertimeHandler,
	adjustmentHandler AdjustmentHandler,
	payrollHandler PayrollHandler,
	announcementHandler AnnouncementHandler,
	dashboardHandler DashboardHandler,
	allowedOrigins []string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/companies", func(r chi.Router) {
				r.Get("/my", companyHandler.GetMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", companyHandler.List)
					r.Post("/", companyHandler.Create)
					r.Get("/{id}", companyHandler.GetByID)
					r.Put("/{id}", companyHandler.Update)
					r.Delete("/{id}", companyHandler.Delete)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.GetByID)
				r.Get("/{id}/leave-balances", leaveHandler.GetEmployeeBalances)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Route("/types", func(r chi.Router) {
					r.Get("/", leaveHandler.ListTypes)
					r.Get("/{id}", leaveHandler.GetType)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Post("/", leaveHandler.CreateType)
						r.Put("/{id}", leaveHandler.UpdateType)
						r.Delete("/{id}", leaveHandler.DeleteType)
					})
				})

				r.Route("/balances", func(r chi.Router) {
					r.Get("/", leaveHandler.ListBalances)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Post("/allocate", leaveHandler.BulkAllocate)
					})
				})

				r.Route("/requests", func(r chi.Router) {
					r.Get("/", leaveHandler.ListRequests)
					r.Post("/", leaveHandler.CreateRequest)
					r.Get("/{id}", leaveHandler.GetRequest)
					r.Post("/{id}/cancel", leaveHandler.CancelRequest)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Get("/export", leaveHandler.ExportRequests)
						r.Post("/{id}/decide", leaveHandler.DecideRequest)
					})
				})
			})

			r.Route("/overtimes", func(r chi.Router) {
				r.Get("/", overtimeHandler.List)
				r.Post("/", overtimeHandler.Submit)
				r.Get("/{id}", overtimeHandler.GetByID)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/export", overtimeHandler.Export)
					r.Post("/{id}/decide", overtimeHandler.Decide)
				})
			})

			r.Route("/adjustments", func(r chi.Router) {
				r.Get("/", adjustmentHandler.List)
				r.Get("/{id}", adjustmentHandler.GetByID)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", adjustmentHandler.Create)
					r.Post("/{id}/decide", adjustmentHandler.Decide)
					r.Delete("/{id}", adjustmentHandler.Delete)
				})
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.Get("/", payrollHandler.List)
				r.Get("/{id}", payrollHandler.GetByID)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/settings", payrollHandler.GetSetting)
					r.Put("/settings", payrollHandler.UpdateSetting)
					r.Post("/generate", payrollHandler.Generate)
					r.Post("/{id}/transition", payrollHandler.Transition)
					r.Delete("/{id}", payrollHandler.Delete)
					r.Get("/export", payrollHandler.Export)
				})
			})

			r.Route("/announcements", func(r chi.Router) {
				r.Get("/", announcementHandler.ListVisible)
				r.Get("/{id}", announcementHandler.GetByID)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/all", announcementHandler.ListAll)
					r.Post("/", announcementHandler.Create)
					r.Put("/{id}", announcementHandler.Update)
					r.Delete("/{id}", announcementHandler.Delete)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", dashboardHandler.Overview)
			})
		})
	})
	return r
}
