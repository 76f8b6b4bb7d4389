package pipeline

import (
	"github.com/nguyentantai21042004/subtrans/internal/config"
	"github.com/nguyentantai21042004/subtrans/internal/logger"
	"github.com/nguyentantai21042004/subtrans/internal/translator"
)

type implPipeline struct {
	cfg        *config.Config
	translator translator.Translator
	logger     logger.Logger
}

// New creates a new Pipeline instance
func New(cfg *config.Config, tr translator.Translator, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:        cfg,
		translator: tr,
		logger:     log,
	}
}
