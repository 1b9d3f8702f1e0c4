package monitoring

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ums-console/internal/config"
	"ums-console/internal/directory"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/sirupsen/logrus"
)

// Server exposes metrics and a small status surface for the ops
// dashboard that watches the consoles.
type Server struct {
	cfg     *config.Config
	cache   *directory.Cache
	started time.Time
}

type statusResponse struct {
	Uptime        string  `json:"uptime"`
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	CachedRecords int     `json:"cached_records"`
}

func NewServer(cfg *config.Config, cache *directory.Cache) *Server {
	return &Server{cfg: cfg, cache: cache, started: time.Now()}
}

// Start runs the listener in the background. Failures are logged, not
// fatal: the console works without its monitoring surface.
func (s *Server) Start() {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/healthz", s.healthz).Methods("GET")
	r.HandleFunc("/status", s.status).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: s.cfg.Monitoring.CorsAllowedOrigins,
		AllowedMethods: s.cfg.Monitoring.CorsAllowedMethods,
		AllowedHeaders: s.cfg.Monitoring.CorsAllowedHeaders,
	})

	addr := fmt.Sprintf(":%d", s.cfg.Monitoring.Port)
	go func() {
		logrus.Infof("[Monitoring] listening on %s", addr)
		if err := http.ListenAndServe(addr, c.Handler(r)); err != nil {
			logrus.Warnf("[Monitoring] server stopped: %v", err)
		}
	}()
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) status(w http.ResponseWriter, _ *http.Request) {
	resp := statusResponse{
		Uptime:        time.Since(s.started).Round(time.Second).String(),
		CachedRecords: s.cache.Len(),
	}
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		resp.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		resp.MemoryPercent = vm.UsedPercent
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
