package main

import (
	"github.com/churnboard/churnboard-go/dataset"
	"github.com/churnboard/churnboard-go/model"
	"github.com/churnboard/churnboard-go/risk"
	"github.com/churnboard/churnboard-go/utils"
	"github.com/gorilla/mux"
)

// Server hosts the churn dashboard API: the load-once dataset store, the
// optional model artifact pair, and the scoring policy.
type Server struct {
	router  *mux.Router
	store   *dataset.Store
	scorer  *risk.Scorer
	modelOK bool
	config  *utils.ConfigManager
}

// NewServer creates a server from the global configuration (config file plus
// environment overrides).
func NewServer() *Server {
	if err := utils.LoadGlobalConfig(); err != nil {
		utils.GetLogger().Error("Failed to load configuration", err, utils.Component("server"))
	}

	cm := utils.GetConfigManager()
	if err := utils.InitLogger(cm.GetConfig().Logging); err != nil {
		utils.GetLogger().Error("Failed to initialize logger", err, utils.Component("server"))
	}

	return newServer(cm)
}

// newServer wires a server from an explicit configuration manager. Tests use
// this to point the store and artifacts at fixtures.
func newServer(cm *utils.ConfigManager) *Server {
	cfg := cm.GetConfig()

	s := &Server{
		router: mux.NewRouter(),
		store:  dataset.NewStore(cfg.Data.DatasetPath),
		config: cm,
	}

	// Model load failure is a soft-degrade, not an error: the prediction
	// feature is disabled and everything else stays up.
	artifacts, ok := model.LoadArtifacts(cfg.Data.ModelPath, cfg.Data.ScalerPath)
	s.modelOK = ok
	if ok {
		s.scorer = risk.NewScorer(artifacts.Scaler, artifacts.Classifier, cfg.Scoring.BaselineChurnRate)
		utils.GetLogger().Info("Churn model artifacts loaded",
			utils.String("model", cfg.Data.ModelPath),
			utils.String("scaler", cfg.Data.ScalerPath),
			utils.Component("server"))
	} else {
		utils.GetLogger().Warn("Churn model artifacts not loaded, prediction disabled",
			utils.String("model", cfg.Data.ModelPath),
			utils.String("scaler", cfg.Data.ScalerPath),
			utils.Component("server"))
	}

	s.setupRoutes()
	return s
}
