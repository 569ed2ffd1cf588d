package main

import (
	"fmt"
	"net/http"

	"github.com/graha-asri/presensi-backend-go/internal/config"
	appHTTP "github.com/graha-asri/presensi-backend-go/internal/handler/http"
	"github.com/graha-asri/presensi-backend-go/internal/pkg/clock"
	"github.com/graha-asri/presensi-backend-go/internal/pkg/database"
	"github.com/graha-asri/presensi-backend-go/internal/pkg/jwt"
	"github.com/graha-asri/presensi-backend-go/internal/repository/postgresql"
	attendanceService "github.com/graha-asri/presensi-backend-go/internal/service/attendance"
	authService "github.com/graha-asri/presensi-backend-go/internal/service/auth"
	employeeService "github.com/graha-asri/presensi-backend-go/internal/service/employee"
	scheduleService "github.com/graha-asri/presensi-backend-go/internal/service/schedule"
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

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	overrideRepo := postgresql.NewScheduleOverrideRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	clk := clock.NewSystemClock()

	authSvc := authService.NewAuthService(userRepo, employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	scheduleSvc := scheduleService.NewScheduleService(overrideRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, scheduleSvc, clk)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		employeeHandler,
		scheduleHandler,
		attendanceHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
