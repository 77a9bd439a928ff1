package pairkit

import (
	"context"
	"fmt"

	"go.llib.dev/frameless/pkg/logging"
)

// Logger receives the fatal entries written right before a dispatch failure panics.
// Set it to nil to silence them.
var Logger = &logging.Logger{}

func logFatal(err error, v any, kind Kind) {
	if Logger == nil {
		return
	}
	ds := []logging.Detail{
		logging.ErrField(err),
		logging.Field("type", fmt.Sprintf("%T", v)),
	}
	if kind != "" {
		ds = append(ds, logging.Field("tag", kind.String()))
	}
	Logger.Fatal(context.Background(), "first value smaller dispatch failed", ds...)
}
