package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/alnoor-academy/attendance-backend-go/internal/config"
	appHTTP "github.com/alnoor-academy/attendance-backend-go/internal/handler/http"
	"github.com/alnoor-academy/attendance-backend-go/internal/pkg/firebase"
	"github.com/alnoor-academy/attendance-backend-go/internal/pkg/i18n"
	"github.com/alnoor-academy/attendance-backend-go/internal/pkg/jwt"
	firestoreRepo "github.com/alnoor-academy/attendance-backend-go/internal/repository/firestore"
	attendanceService "github.com/alnoor-academy/attendance-backend-go/internal/service/attendance"
	authService "github.com/alnoor-academy/attendance-backend-go/internal/service/auth"
	exportService "github.com/alnoor-academy/attendance-backend-go/internal/service/export"
	reportService "github.com/alnoor-academy/attendance-backend-go/internal/service/report"
	staffService "github.com/alnoor-academy/attendance-backend-go/internal/service/staff"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone:", err)
	}

	i18n.Init(cfg.App.DefaultLang)

	ctx := context.Background()
	firestoreClient, err := firebase.NewFirestoreClient(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		fmt.Println("Error connecting to Firestore:", err)
		return
	}
	defer firestoreClient.Close()

	attendanceRepo := firestoreRepo.NewAttendanceRepository(firestoreClient)
	staffRepo := firestoreRepo.NewStaffRepository(firestoreClient)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	firebaseAuthClient := firebase.NewAuthClient(cfg.Firebase.WebAPIKey)

	// The logo is optional branding; the Urdu font is required only when an
	// Urdu PDF is actually requested, so startup tolerates both being absent.
	logo := readAsset(cfg.Report.LogoPath)
	urduFont := readAsset(cfg.Report.UrduFontPath)
	if len(urduFont) == 0 {
		log.Println("Urdu font not found, Urdu PDF export disabled:", cfg.Report.UrduFontPath)
	}

	authSvc := authService.NewAuthService(firebaseAuthClient, staffRepo, JWTService, cfg.Firebase.AuthDomainSuffix)
	staffSvc := staffService.NewStaffService(staffRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, staffRepo, location)
	reportSvc := reportService.NewReportService(attendanceRepo, staffRepo, location)
	exportSvc := exportService.NewExportService(cfg.Report.OrgNameEn, cfg.Report.OrgNameUr, logo, urduFont)

	router := appHTTP.NewRouter(cfg, JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Staff:      appHTTP.NewStaffHandler(staffSvc),
		Report:     appHTTP.NewReportHandler(reportSvc, exportSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

func readAsset(path string) []byte {
	if path == "" {
		return nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return raw
}
