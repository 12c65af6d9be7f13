package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	_ "github.com/davematchica/Lugawan-Ordering-System/docs"
	"github.com/davematchica/Lugawan-Ordering-System/internal/config"
	"github.com/davematchica/Lugawan-Ordering-System/internal/expense"
	"github.com/davematchica/Lugawan-Ordering-System/internal/menu"
	"github.com/davematchica/Lugawan-Ordering-System/internal/order"
)

// @title Lugawan Ordering System API
// @version 1.0
// @description Order, expense, and menu management for a single-location food stall.
// @BasePath /
func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("postgres ping: %v", err)
	}

	menuRepo := menu.NewPGRepo(pool)
	if err := menu.EnsureDefaults(ctx, menuRepo); err != nil {
		log.Fatalf("menu seed: %v", err)
	}

	engine := order.NewEngine(order.NewPGRepo(pool))
	ledger := expense.NewLedger(expense.NewPGRepo(pool))

	r := newRouter(menuRepo, engine, ledger)
	log.Printf("lugawan listening on %s", cfg.Addr)
	log.Fatal(r.Run(cfg.Addr))
}
