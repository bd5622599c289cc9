package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/attendly/checkin-backend-go/internal/config"
	appHTTP "github.com/attendly/checkin-backend-go/internal/handler/http"
	"github.com/attendly/checkin-backend-go/internal/pkg/database"
	"github.com/attendly/checkin-backend-go/internal/pkg/punchwindow"
	"github.com/attendly/checkin-backend-go/internal/repository/postgresql"
	checkinService "github.com/attendly/checkin-backend-go/internal/service/checkin"
	directoryService "github.com/attendly/checkin-backend-go/internal/service/directory"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	window, err := punchwindow.New(
		cfg.PunchWindow.Start,
		cfg.PunchWindow.End,
		cfg.PunchWindow.UTCOffset,
		cfg.PunchWindow.ZoneLabel,
	)
	if err != nil {
		log.Fatal("Error building punch-in window: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := postgresql.EnsureSchema(ctx, db); err != nil {
		log.Fatal("Error ensuring database schema: ", err)
	}

	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	directorySvc := directoryService.NewDirectoryService(db, departmentRepo, employeeRepo)
	if err := directorySvc.SeedDefaults(ctx); err != nil {
		log.Fatal("Error seeding directory defaults: ", err)
	}

	checkInSvc := checkinService.NewCheckInService(attendanceRepo, window, cfg.Office)

	checkInHandler := appHTTP.NewCheckInHandler(checkInSvc, window)
	directoryHandler := appHTTP.NewDirectoryHandler(directorySvc)

	router := appHTTP.NewRouter(cfg, checkInHandler, directoryHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
