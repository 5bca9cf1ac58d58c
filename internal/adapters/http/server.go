// Package http exposes the object storage bucket and the agent harness
// over a JSON API.
package http

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Vrun1506/foto-AI/internal/agent"
	"github.com/Vrun1506/foto-AI/internal/storage"
)

// maxUploadSize caps multipart uploads at 100 MiB.
const maxUploadSize = 100 << 20

// Processor runs an agent job against an uploaded image.
type Processor interface {
	ProcessImage(ctx context.Context, imagePath, prompt string) agent.Outcome
}

// Server serves the storage and agent endpoints.
type Server struct {
	store     storage.ObjectStore
	bucket    string
	processor Processor
	logger    *slog.Logger
}

// NewHandler builds the router. processor may be nil when the agent is not
// configured; the /process endpoint then reports 503.
func NewHandler(store storage.ObjectStore, bucket string, processor Processor, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		store:     store,
		bucket:    bucket,
		processor: processor,
		logger:    logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(metricsMiddleware)

	r.Get("/health", s.health)
	r.Post("/upload", s.upload)
	// Wildcards so object names may contain slashes.
	r.Get("/download/*", s.download)
	r.Get("/list", s.list)
	r.Delete("/delete/*", s.delete)
	r.Get("/metadata/*", s.metadata)
	r.Post("/process", s.process)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "Endpoint not found")
	})

	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "foto-AI storage API",
	})
}

func (s *Server) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "No file provided")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil || header.Filename == "" {
		respondError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	prompt := r.FormValue("prompt")

	objectName := r.FormValue("object_name")
	if objectName == "" {
		objectName = header.Filename
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := s.store.Put(r.Context(), objectName, file, header.Size, contentType); err != nil {
		s.logger.Error("upload failed", "object", objectName, "err", err)
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Upload failed: %v", err))
		return
	}

	s.logger.Info("object uploaded", "object", objectName, "size", header.Size)
	respondJSON(w, http.StatusOK, map[string]any{
		"message":     "File uploaded successfully",
		"object_name": objectName,
		"prompt":      prompt,
		"bucket":      s.bucket,
	})
}

func (s *Server) download(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")

	data, info, err := s.store.Get(r.Context(), name)
	if err != nil {
		s.respondStoreError(w, name, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"object_name":  name,
		"content_type": info.ContentType,
		"size":         len(data),
		"data":         base64.StdEncoding.EncodeToString(data),
	})
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}
	prefix := r.URL.Query().Get("prefix")

	objects, err := s.store.List(r.Context(), prefix, limit)
	if err != nil {
		s.logger.Error("list failed", "err", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	items := make([]map[string]any, 0, len(objects))
	for _, obj := range objects {
		items = append(items, map[string]any{
			"name":         obj.Name,
			"size":         obj.Size,
			"time_created": obj.LastModified,
			"md5":          obj.ETag,
		})
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"bucket":  s.bucket,
		"objects": items,
		"count":   len(items),
	})
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")

	if err := s.store.Delete(r.Context(), name); err != nil {
		s.respondStoreError(w, name, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message":     "File deleted successfully",
		"object_name": name,
	})
}

func (s *Server) metadata(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")

	info, err := s.store.Head(r.Context(), name)
	if err != nil {
		s.respondStoreError(w, name, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"object_name":    name,
		"content_type":   info.ContentType,
		"content_length": info.Size,
		"etag":           info.ETag,
		"last_modified":  info.LastModified,
	})
}

type processRequest struct {
	ObjectName string `json:"object_name"`
	Prompt     string `json:"prompt"`
}

func (s *Server) process(w http.ResponseWriter, r *http.Request) {
	if s.processor == nil {
		respondError(w, http.StatusServiceUnavailable, "Agent is not configured")
		return
	}

	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.ObjectName == "" {
		respondError(w, http.StatusBadRequest, "object_name is required")
		return
	}

	// The object must exist before spending a model call on it.
	if _, err := s.store.Head(r.Context(), req.ObjectName); err != nil {
		s.respondStoreError(w, req.ObjectName, err)
		return
	}

	outcome := s.processor.ProcessImage(r.Context(), req.ObjectName, req.Prompt)
	status := http.StatusOK
	if outcome.Status != "success" {
		status = http.StatusBadGateway
	}
	respondJSON(w, status, outcome)
}

func (s *Server) respondStoreError(w http.ResponseWriter, name string, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		respondError(w, http.StatusNotFound, "File not found")
		return
	}
	s.logger.Error("storage error", "object", name, "err", err)
	respondError(w, http.StatusInternalServerError, err.Error())
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
