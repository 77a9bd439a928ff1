package pairkit

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrNotImplemented is raised when a type tagged ManualOverride
	// still relies on the default strategy of its tag.
	ErrNotImplemented errorkit.Error = "ErrNotImplemented"
	// ErrUnboundTag is raised when OptimizationDetails returns no tag at all.
	ErrUnboundTag errorkit.Error = "ErrUnboundTag"
)
