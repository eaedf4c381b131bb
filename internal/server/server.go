package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/KRIPAVERMA/mediabotbackend/internal/config"
	"github.com/KRIPAVERMA/mediabotbackend/internal/models"
	"github.com/KRIPAVERMA/mediabotbackend/internal/pkg/hash"
	"github.com/KRIPAVERMA/mediabotbackend/internal/pkg/log"
	"github.com/KRIPAVERMA/mediabotbackend/internal/repository"
	"github.com/KRIPAVERMA/mediabotbackend/internal/service"
	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const shutdownTimeout = 30 * time.Second

// Server is the embedding application around the download adapter. The
// adapter itself stays synchronous and stateless; anything stateful (recent
// results, the optional info cache) or resilient (caller-side retry of
// metadata queries) lives here.
type Server struct {
	conf    *config.Config
	svc     *service.DownloadService
	results *repository.ResultRepository

	// nil unless enabled in the config
	infoCache *cache.Cache
}

func NewServer(conf *config.Config, svc *service.DownloadService, results *repository.ResultRepository) *Server {
	s := &Server{
		conf:    conf,
		svc:     svc,
		results: results,
	}

	if conf.Cache.Enabled {
		s.infoCache = cache.New(conf.Cache.TTL, conf.Cache.TTL/3)
	}

	return s
}

func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/download", s.handleDownload)
	mux.HandleFunc("/api/info", s.handleInfo)
	mux.HandleFunc("/api/result/", s.handleResult)
	mux.HandleFunc("/health", s.handleHealth)

	srv := &http.Server{
		Addr:        s.conf.Server.Addr,
		Handler:     mux,
		ReadTimeout: 30 * time.Second,
		IdleTimeout: 60 * time.Second,
		// no WriteTimeout: a download response is held open for the whole
		// transfer and can legitimately take many minutes
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Logger.Infow("server listening", "addr", s.conf.Server.Addr)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

type downloadPayload struct {
	URL       string `json:"url"`
	OutputDir string `json:"output_dir"`
	Mode      string `json:"mode"`
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var p downloadPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if p.OutputDir == "" {
		p.OutputDir = s.conf.Downloader.OutputDir
	}
	if err := os.MkdirAll(p.OutputDir, 0o755); err != nil {
		log.Logger.Errorw("failed to create output directory", "dir", p.OutputDir, "error", err)
		writeRecord(w, "", models.MarshalRecord(models.NewDownloadError(err.Error())))
		return
	}

	record := s.svc.DownloadMedia(r.Context(), p.URL, p.OutputDir, p.Mode)

	id := uuid.New().String()
	s.results.Put(id, record)

	writeRecord(w, id, record)
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	url := r.URL.Query().Get("url")
	if url == "" {
		http.Error(w, "missing url parameter", http.StatusBadRequest)
		return
	}

	key := hash.Sha256(url)
	if s.infoCache != nil {
		if cached, ok := s.infoCache.Get(key); ok {
			writeRecord(w, "", cached.(string))
			return
		}
	}

	// transient failures are retried on this side of the adapter boundary;
	// the adapter itself never retries
	attempts := s.conf.Downloader.InfoAttempts
	if attempts == 0 {
		attempts = 1
	}

	var info *models.Info
	err := retry.Do(
		func() error {
			res, infoErr := s.svc.Info(r.Context(), url)
			if infoErr != nil {
				return infoErr
			}

			info = res

			return nil
		},
		retry.Context(r.Context()),
		retry.Attempts(attempts),
		retry.RetryIf(func(err error) bool {
			return service.KindOf(err) == service.KindNetwork
		}),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		writeRecord(w, "", models.MarshalRecord(models.NewInfoError(err.Error())))
		return
	}

	record := models.MarshalRecord(models.NewInfoSuccess(info))
	if s.infoCache != nil {
		s.infoCache.Set(key, record, cache.DefaultExpiration)
	}

	writeRecord(w, "", record)
}

func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/result/")

	record, ok := s.results.Get(id)
	if !ok {
		http.Error(w, "result not found", http.StatusNotFound)
		return
	}

	writeRecord(w, id, record)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, `{"status":"ok"}`)
}

func writeRecord(w http.ResponseWriter, id, record string) {
	w.Header().Set("Content-Type", "application/json")
	if id != "" {
		w.Header().Set("X-Request-Id", id)
	}
	_, _ = io.WriteString(w, record)
}
