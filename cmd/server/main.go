package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"newsnexus/config"
	"newsnexus/database"
	"newsnexus/router"

	// Articles
	artCtrlImp "newsnexus/pkg/article/controllerImp"
	artRepoImp "newsnexus/pkg/article/repositoryImp"

	// Deduper
	dedCtrlImp "newsnexus/pkg/deduper/controllerImp"
	dedRepoImp "newsnexus/pkg/deduper/repositoryImp"
	dedSvcImp "newsnexus/pkg/deduper/serviceImp"

	// Reports
	repCtrlImp "newsnexus/pkg/report/controllerImp"
	repRepoImp "newsnexus/pkg/report/repositoryImp"
	repSvcImp "newsnexus/pkg/report/serviceImp"

	"newsnexus/pkg/artifact"
	"newsnexus/pkg/queuer"

	// Health
	healthCtrlImp "newsnexus/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 4) Artifact output + timezone
	assembler, err := artifact.NewFileAssembler(cfg.ReportsDir)
	if err != nil {
		log.Fatalf("artifact dir: %v", err)
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("load timezone %s: %v", cfg.Timezone, err)
	}

	// 5) External scorer queue
	q := queuer.New(cfg.QueuerBaseURL)

	// 6) Repos/Services/Controllers
	aRepo := artRepoImp.New(db)
	aCtrl := artCtrlImp.New(aRepo)

	dRepo := dedRepoImp.New(db)
	dSvc := dedSvcImp.New(dRepo)
	dCtrl := dedCtrlImp.New(dSvc, dRepo, q, cfg.ReportsDir)

	rRepo := repRepoImp.New(db)
	rSvc := repSvcImp.New(rRepo, assembler, loc)
	rCtrl := repCtrlImp.New(rSvc, cfg.ReportsDir)

	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 7) Router
	r := router.New(e, cfg.JWTSecret, aCtrl, dCtrl, rCtrl, hCtrl)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
