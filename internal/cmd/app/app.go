// Package app is helper for simple cli apps.
package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/go-faster/daytime"
	"github.com/go-faster/daytime/zapdt"
)

// Run calls run with development logger that renders timestamps at local
// offset, exiting with code 2 on error.
func Run(run func(ctx context.Context, lg *zap.Logger) error) {
	lg, err := zapdt.NewLogger(zap.NewDevelopmentConfig(), daytime.LocalOffset(), daytime.PrecisionMillisecond)
	if err != nil {
		panic(err)
	}
	if err := run(context.Background(), lg); err != nil {
		_ = lg.Sync()
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(2)
	}
	_ = lg.Sync()
}
