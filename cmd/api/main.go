package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/tanishqsindhu/attendance-system-sub000/internal/config"
	appHTTP "github.com/tanishqsindhu/attendance-system-sub000/internal/handler/http"
	"github.com/tanishqsindhu/attendance-system-sub000/internal/pkg/database"
	"github.com/tanishqsindhu/attendance-system-sub000/internal/pkg/jwt"
	"github.com/tanishqsindhu/attendance-system-sub000/internal/repository/postgresql"
	attendanceService "github.com/tanishqsindhu/attendance-system-sub000/internal/service/attendance"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.App.LogLevel),
	}))

	employeeRepo := postgresql.NewEmployeeRepository(db)
	scheduleRepo := postgresql.NewShiftScheduleRepository(db)
	ruleRepo := postgresql.NewRuleRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		ruleRepo,
		holidayRepo,
		punchRepo,
		scheduleRepo,
		employeeRepo,
		logger,
	)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(JWTService, attendanceHandler, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
