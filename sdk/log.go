package sdk

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log writes one contract event line. Events stay terse pipe-packed strings
// so indexers can replay them without a schema; zap carries them out.
// Example payload: sdk.Log("ml|nft:...|p:5")
func Log(line string) {
	zap.L().Info(line)
}

// InitLogger installs the global zap logger used by Log and the demo binary.
func InitLogger(debug bool) {
	pe := zap.NewProductionEncoderConfig()
	pe.EncodeTime = zapcore.ISO8601TimeEncoder
	pe.MessageKey = "message"
	pe.TimeKey = "time"
	pe.EncodeLevel = zapcore.CapitalLevelEncoder

	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig = pe
	cfg.Encoding = "console"
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}
