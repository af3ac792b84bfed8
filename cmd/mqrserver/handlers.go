package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/444lessio/mqrtree/internal/geom"
	"github.com/444lessio/mqrtree/internal/metrics"

	"github.com/gin-gonic/gin"
)

type insertRequest struct {
	ID  string  `json:"id" binding:"required"`
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// handleInsert adds a single point to the index.
func (s *server) handleInsert(c *gin.Context) {
	start := time.Now()
	defer func() { metrics.OperationDuration.WithLabelValues("insert").Observe(time.Since(start).Seconds()) }()

	var req insertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.OperationsTotal.WithLabelValues("insert", "caller_error").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	env := geom.NewFromPoint(req.Lon, req.Lat)

	s.mu.Lock()
	err := s.tree.Insert(point{ID: req.ID, Lon: req.Lon, Lat: req.Lat}, env)
	size := s.tree.Len()
	s.mu.Unlock()

	if err != nil {
		metrics.OperationsTotal.WithLabelValues("insert", "invariant_error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	metrics.OperationsTotal.WithLabelValues("insert", "ok").Inc()
	metrics.TreeSize.Set(float64(size))
	c.JSON(http.StatusCreated, gin.H{"id": req.ID})
}

// handleSearch finds every indexed point inside a lon/lat bounding box.
func (s *server) handleSearch(c *gin.Context) {
	start := time.Now()
	defer func() { metrics.OperationDuration.WithLabelValues("search").Observe(time.Since(start).Seconds()) }()

	minLon, errA := strconv.ParseFloat(c.Query("min_lon"), 64)
	maxLon, errB := strconv.ParseFloat(c.Query("max_lon"), 64)
	minLat, errC := strconv.ParseFloat(c.Query("min_lat"), 64)
	maxLat, errD := strconv.ParseFloat(c.Query("max_lat"), 64)
	if errA != nil || errB != nil || errC != nil || errD != nil {
		metrics.OperationsTotal.WithLabelValues("search", "caller_error").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "min_lon, max_lon, min_lat, max_lat are required"})
		return
	}

	query, err := geom.New(minLon, maxLon, minLat, maxLat)
	if err != nil {
		metrics.OperationsTotal.WithLabelValues("search", "caller_error").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.RLock()
	results := s.tree.Search(query)
	s.mu.RUnlock()

	metrics.OperationsTotal.WithLabelValues("search", "ok").Inc()
	c.JSON(http.StatusOK, results)
}

// handleKNN finds the k points closest to a lon/lat query point.
func (s *server) handleKNN(c *gin.Context) {
	start := time.Now()
	defer func() { metrics.OperationDuration.WithLabelValues("knn").Observe(time.Since(start).Seconds()) }()

	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	if errLon != nil || errLat != nil {
		metrics.OperationsTotal.WithLabelValues("knn", "caller_error").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "lon and lat are required"})
		return
	}

	k := s.cfg.DefaultK
	if kStr := c.Query("k"); kStr != "" {
		parsed, err := strconv.Atoi(kStr)
		if err != nil {
			metrics.OperationsTotal.WithLabelValues("knn", "caller_error").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": "k must be an integer"})
			return
		}
		k = parsed
	}

	s.mu.RLock()
	results, err := s.tree.KNN(geom.Point{X: lon, Y: lat}, k)
	s.mu.RUnlock()

	if err != nil {
		metrics.OperationsTotal.WithLabelValues("knn", "caller_error").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	metrics.OperationsTotal.WithLabelValues("knn", "ok").Inc()
	c.JSON(http.StatusOK, results)
}

// handleBounds reports the envelope and area currently covering every
// indexed point, and, when lon/lat are supplied, whether that point falls
// within it.
func (s *server) handleBounds(c *gin.Context) {
	s.mu.RLock()
	bounds, ok := s.tree.Bounds()
	s.mu.RUnlock()

	if !ok {
		c.JSON(http.StatusOK, gin.H{"empty": true})
		return
	}

	resp := gin.H{
		"min_lon": bounds.MinX,
		"max_lon": bounds.MaxX,
		"min_lat": bounds.MinY,
		"max_lat": bounds.MaxY,
		"area":    bounds.Area(),
	}

	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	if errLon == nil && errLat == nil {
		resp["contains"] = bounds.ContainsCentroid(geom.Point{X: lon, Y: lat})
	}

	c.JSON(http.StatusOK, resp)
}
