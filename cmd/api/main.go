package main

import (
	"context"
	"log"
	"net/http"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/plantoes/internal/config"
	dbpkg "github.com/BruksfildServices01/plantoes/internal/db"
	"github.com/BruksfildServices01/plantoes/internal/infra/storage"
	"github.com/BruksfildServices01/plantoes/internal/routes"
	"github.com/BruksfildServices01/plantoes/internal/session"
	ucProof "github.com/BruksfildServices01/plantoes/internal/usecase/proof"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	// --------------------------------------------------
	// Revoked sessions (Redis)
	// --------------------------------------------------
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer rdb.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	cancel()

	revoker := session.NewRedisRevoker(rdb)

	// --------------------------------------------------
	// Receipt proofs (S3)
	// --------------------------------------------------
	var proofs ucProof.Store
	if cfg.ProofsEnabled() {
		proofs = storage.NewS3Store(cfg)
	} else {
		log.Println("S3_BUCKET not set; proof uploads disabled")
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, revoker, proofs)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
