// Copyright 2025 RCC-loss Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package loss provides keypoint regression loss layers with explicit
// forward and backward passes.
//
// RelevantLoss penalizes errors in the relative geometry of predicted points:
// for every pair of x-coordinates (and separately every pair of
// y-coordinates) it compares the predicted difference with the true one.
// EuclideanLoss is the absolute squared-error baseline with the same
// contract.
//
// # Protocol
//
// A host framework drives a layer in two steps:
//
//	l := loss.NewRelevantLoss(loss.DefaultConfig())
//	out, err := l.Forward(pred, truth)              // out holds the mean loss
//	grads, err := l.Backward(g, []bool{true, false}, pred, truth)
//
// Backward is only valid after a Forward on the same shapes and fails with
// ErrInvalidState otherwise. It may be called repeatedly with different
// upstream gradients.
//
// # Registry
//
// Configuration loaders resolve layer names through DefaultRegistry:
//
//	l, err := loss.DefaultRegistry.New("RelevantLoss", loss.DefaultConfig())
package loss
