package logger

import (
	"go.uber.org/zap"
)

// New builds the process-wide logger. Debug mode gets a human-readable
// console encoder, everything else JSON.
func New(mode string) (*zap.Logger, error) {
	if mode == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
