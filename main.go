package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"library-backend/internal/catalog/books"
	"library-backend/internal/catalog/staff"
	"library-backend/internal/catalog/students"
	"library-backend/internal/circulation"
	"library-backend/internal/dashboard"
	"library-backend/internal/platform/db"
)

func main() {
	cfg, err := db.LoadConfig("config/config.yaml")
	if err != nil {
		panic(err)
	}

	log.Printf("[INFO] mode:%s\n", cfg.Mode)
	if cfg.Mode != "dev" && cfg.Mode != "release" {
		log.Fatalf("invalid mode %q, want dev or release", cfg.Mode)
	}

	conn, err := db.Connect(cfg.DB)
	if err != nil {
		panic(err)
	}
	defer conn.Close()

	if err := db.Migrate(conn, "mysql"); err != nil {
		log.Fatal(err)
	}
	log.Printf("[INFO] connected to DB: %s", cfg.DB.DBName)

	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	_ = r.SetTrustedProxies(nil)

	// The admin UI is served separately, so the browser always needs CORS.
	corsCfg := cors.Config{
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "Location"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}
	if len(cfg.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	api := r.Group("/api")
	books.RegisterRoutes(api, books.NewService(conn))
	students.RegisterRoutes(api, students.NewService(conn))
	staff.RegisterRoutes(api, staff.NewService(conn))
	circulation.RegisterRoutes(api, circulation.NewService(conn, cfg.FinePerDay))
	dashboard.RegisterRoutes(api, dashboard.NewService(conn))

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	go func() {
		log.Printf("[INFO] listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("[INFO] shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
