// Copyright 2025 RCC-loss Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package loss

import (
	"github.com/nianfudong/RCC-loss/internal/loss"
	"github.com/nianfudong/RCC-loss/internal/parallel"
)

// Layer is the capability set a host framework needs from a loss layer.
type Layer = loss.Layer

// Config controls how a layer executes.
type Config = loss.Config

// ParallelConfig controls per-sample fan-out across goroutines.
type ParallelConfig = parallel.Config

// DefaultConfig returns the default layer configuration.
func DefaultConfig() Config {
	return loss.DefaultConfig()
}

// SequentialConfig returns a configuration that never spawns goroutines.
func SequentialConfig() Config {
	return Config{Parallel: parallel.Sequential()}
}

// State is the forward/backward protocol state of a layer.
type State = loss.State

// Layer states.
const (
	Idle         = loss.Idle
	LossComputed = loss.LossComputed
)

// Layers

// RelevantLoss is the relative-geometry keypoint loss.
type RelevantLoss = loss.RelevantLoss

// NewRelevantLoss creates a relative-geometry loss layer.
//
// Example:
//
//	l := loss.NewRelevantLoss(loss.DefaultConfig())
//	out, err := l.Forward(pred, truth)
func NewRelevantLoss(cfg Config) *RelevantLoss {
	return loss.NewRelevantLoss(cfg)
}

// EuclideanLoss is the absolute squared-error loss.
type EuclideanLoss = loss.EuclideanLoss

// NewEuclideanLoss creates an absolute squared-error loss layer.
func NewEuclideanLoss(cfg Config) *EuclideanLoss {
	return loss.NewEuclideanLoss(cfg)
}

// Registered layer names.
const (
	RelevantLossType  = loss.RelevantLossType
	EuclideanLossType = loss.EuclideanLossType
)

// Coordinate groups

// Range is a half-open channel interval.
type Range = loss.Range

// Groups holds the x and y channel ranges of a blob.
type Groups = loss.Groups

// Registry

// Factory builds a layer from an execution config.
type Factory = loss.Factory

// Registry maps layer type names to factories.
type Registry = loss.Registry

// NewRegistry creates a registry holding the built-in layers.
func NewRegistry() *Registry {
	return loss.NewRegistry()
}

// DefaultRegistry is the registry consulted by configuration loaders.
var DefaultRegistry = loss.DefaultRegistry

// Errors

// ShapeError provides detailed information about a rejected input pair.
type ShapeError = loss.ShapeError

// Sentinel errors, usable with errors.Is.
var (
	ErrShapeMismatch    = loss.ErrShapeMismatch
	ErrInvalidState     = loss.ErrInvalidState
	ErrUnsupportedShape = loss.ErrUnsupportedShape
	ErrUnsupportedDType = loss.ErrUnsupportedDType
	ErrInvalidArgument  = loss.ErrInvalidArgument
	ErrUnknownLayer     = loss.ErrUnknownLayer
)
