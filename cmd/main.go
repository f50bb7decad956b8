package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/pbk69220/tournoi-football-inscription2/config"
	"github.com/pbk69220/tournoi-football-inscription2/database"
	"github.com/pbk69220/tournoi-football-inscription2/routes"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		log.Fatal("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.RegisterRoutes(e, cfg, db)

	addr := ":" + cfg.AppPort
	go func() {
		log.Printf("server listening at %s", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	if err := database.Close(db); err != nil {
		log.Printf("error closing database: %v", err)
	} else {
		log.Println("database connection closed")
	}
}
