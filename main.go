package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"settei/adapters/excel"
	"settei/app"
	"settei/internal"
	"settei/internal/config"
	"settei/internal/tally"
	"settei/ui"
)

func main() {
	// .env is optional; environment variables win either way.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(appConfig.Server.GinMode)

	logger := internal.NewDefaultLogger()
	estimator := app.NewEstimateService(appConfig.Goals, logger)
	exporter := excel.NewReportWriter()
	tallies := tally.NewRegistry()

	server := ui.NewServer(estimator, exporter, tallies)

	if appConfig.Profiling.Enabled {
		go func() {
			log.Printf("pprof server starting on :%s", appConfig.Profiling.Port)
			if err := http.ListenAndServe(":"+appConfig.Profiling.Port, ui.NewDebugRouter()); err != nil {
				log.Printf("pprof server failed: %v", err)
			}
		}()
	}

	log.Printf("Starting settei server on port %s (%d goal groupings)", appConfig.Server.Port, len(appConfig.Goals))
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}
