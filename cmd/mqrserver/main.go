package main

import (
	"flag"
	"log"
	"sync"

	"github.com/444lessio/mqrtree/internal/config"
	"github.com/444lessio/mqrtree/internal/mqrtree"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// point is the payload stored alongside each indexed envelope: a stable
// identifier and the coordinates it was last inserted at.
type point struct {
	ID  string  `json:"id"`
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// server wraps the tree with the external synchronization the MQR-Tree
// itself does not provide: insertion and search must not race each other,
// so every handler takes mu before touching tree.
type server struct {
	mu   sync.RWMutex
	tree *mqrtree.Tree[point]
	cfg  config.Config
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	srv := &server{
		tree: mqrtree.New[point](),
		cfg:  cfg,
	}

	if cfg.Simulation.Enabled {
		log.Printf("Starting simulation with %d points...", cfg.Simulation.PointCount)
		go srv.simulate(cfg.Simulation)
		log.Println("Simulation started in the background.")
	}

	r := gin.Default()
	r.Use(cors.Default())

	r.POST("/points", srv.handleInsert)
	r.GET("/search", srv.handleSearch)
	r.GET("/knn", srv.handleKNN)
	r.GET("/bounds", srv.handleBounds)
	r.GET("/metrics", gin.WrapH(metricsHandler()))

	log.Printf("API server listening on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
