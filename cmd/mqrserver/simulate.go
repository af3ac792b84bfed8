package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/444lessio/mqrtree/internal/config"
	"github.com/444lessio/mqrtree/internal/geom"
	"github.com/444lessio/mqrtree/internal/metrics"

	"golang.org/x/time/rate"
)

// simulate scatters cfg.PointCount synthetic points across the world
// bounds and keeps nudging them. Since mqrtree has no delete, a "move"
// inserts the point again under a new generation-tagged ID instead of
// moving it in place.
func (s *server) simulate(cfg config.Simulation) {
	limiter := rate.NewLimiter(rate.Limit(cfg.MovesPerTick), 1)
	ctx := context.Background()

	for i := 0; i < cfg.PointCount; i++ {
		go s.simulatePoint(ctx, fmt.Sprintf("sim-%d", i), int64(i), cfg, limiter)
	}
}

func (s *server) simulatePoint(ctx context.Context, id string, seed int64, cfg config.Simulation, limiter *rate.Limiter) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano() + seed))
	time.Sleep(time.Duration(rng.Intn(5000)) * time.Millisecond)

	lon := s.cfg.World.MinX + rng.Float64()*(s.cfg.World.MaxX-s.cfg.World.MinX)
	lat := s.cfg.World.MinY + rng.Float64()*(s.cfg.World.MaxY-s.cfg.World.MinY)
	generation := 0

	for {
		if err := limiter.Wait(ctx); err != nil {
			return
		}

		lon = clamp(lon+(rng.Float64()-0.5)*0.1, s.cfg.World.MinX, s.cfg.World.MaxX)
		lat = clamp(lat+(rng.Float64()-0.5)*0.1, s.cfg.World.MinY, s.cfg.World.MaxY)
		generation++

		p := point{ID: fmt.Sprintf("%s#%d", id, generation), Lon: lon, Lat: lat}

		s.mu.Lock()
		err := s.tree.Insert(p, geom.NewFromPoint(lon, lat))
		size := s.tree.Len()
		s.mu.Unlock()

		if err != nil {
			metrics.OperationsTotal.WithLabelValues("insert", "invariant_error").Inc()
			return
		}
		metrics.OperationsTotal.WithLabelValues("insert", "ok").Inc()
		metrics.TreeSize.Set(float64(size))

		time.Sleep(time.Duration(cfg.MoveIntervalS) * time.Second)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
