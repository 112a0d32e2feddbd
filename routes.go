package main

// setupRoutes sets up the HTTP routes with API versioning
func (s *Server) setupRoutes() {
	// Add middleware
	s.router.Use(s.loggingMiddleware)
	s.router.Use(s.errorRecoveryMiddleware)

	// Health check (no version)
	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")

	// Create API version subrouter
	v1 := s.router.PathPrefix("/api/v1").Subrouter()
	v1.Use(s.versionMiddleware("v1"))

	// System endpoints
	v1.HandleFunc("/version", s.handleVersion).Methods("GET")
	v1.HandleFunc("/diagnostics", s.handleDiagnostics).Methods("GET")
	v1.HandleFunc("/config", s.handleGetConfig).Methods("GET")

	// Dashboard endpoints
	v1.HandleFunc("/segments", s.handleSegments).Methods("GET")
	v1.HandleFunc("/dashboard", s.handleDashboard).Methods("POST")
	v1.HandleFunc("/dashboard/at-risk", s.handleAtRisk).Methods("POST")
	v1.HandleFunc("/dashboard/at-risk/export", s.handleAtRiskExport).Methods("GET", "POST")

	// Prediction endpoint
	v1.HandleFunc("/predict", s.handlePredict).Methods("POST")
}
