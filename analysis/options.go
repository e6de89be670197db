package analysis

import (
	log "github.com/sirupsen/logrus"

	"github.com/NickyBoy89/varrefactor/config"
	"github.com/NickyBoy89/varrefactor/internal/textutil"
)

// Option configures an Analysis
type Option func(*options)

type options struct {
	logger               log.FieldLogger
	signatureAnnotations []string
	minRenameSupport     int
}

func defaultOptions() options {
	return options{
		logger:               log.StandardLogger(),
		signatureAnnotations: textutil.DefaultSignatureAnnotations,
		minRenameSupport:     2,
	}
}

// WithLogger sets the logger decisions are reported to
func WithLogger(logger log.FieldLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithConfig applies the analysis section of a loaded configuration
func WithConfig(cfg config.AnalysisConfig) Option {
	return func(o *options) {
		if cfg.SignatureAnnotations != nil {
			o.signatureAnnotations = cfg.SignatureAnnotations
		}
		if cfg.MinRenameSupport >= 2 {
			o.minRenameSupport = cfg.MinRenameSupport
		}
	}
}
