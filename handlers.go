package main

import (
	"net/http"
	"os"
	"time"
)

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, map[string]any{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// handleVersion handles version requests
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, map[string]any{
		"version":      churnboardVersion,
		"model_loaded": s.modelOK,
	})
}

// handleDiagnostics reports the working directory and the presence of each
// of the three expected input files, for debugging load failures.
func (s *Server) handleDiagnostics(w http.ResponseWriter, r *http.Request) {
	cfg := s.config.GetConfig()

	wd, err := os.Getwd()
	if err != nil {
		wd = "unknown"
	}

	files := map[string]bool{
		cfg.Data.DatasetPath: fileExists(cfg.Data.DatasetPath),
		cfg.Data.ModelPath:   fileExists(cfg.Data.ModelPath),
		cfg.Data.ScalerPath:  fileExists(cfg.Data.ScalerPath),
	}

	writeJSONResponse(w, http.StatusOK, map[string]any{
		"working_directory": wd,
		"files":             files,
		"model_loaded":      s.modelOK,
	})
}

// handleGetConfig returns the current configuration
func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, s.config.GetConfig())
}

// fileExists reports whether a path exists and is a regular file
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
