package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/clientdesk/clientdesk/internal/config"
	dbpkg "github.com/clientdesk/clientdesk/internal/db"
	"github.com/clientdesk/clientdesk/internal/middleware"
	"github.com/clientdesk/clientdesk/internal/routes"
	"github.com/clientdesk/clientdesk/internal/seed"
	"github.com/clientdesk/clientdesk/internal/store"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	st := store.NewGormStore(db)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, st, cfg)

	// Seed after routes so a slow or missing database never delays the
	// surface coming up.
	seed.Run(context.Background(), st)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
