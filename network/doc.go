// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package network provides a fully connected feed-forward network with
// sigmoid activations on every non-input layer.
//
// # Overview
//
// This package contains:
//   - Network: layer sizes, weight matrices and bias vectors
//   - Sample: one (input, expected output) training pair
//   - Gradient: per-layer partial derivatives of the quadratic cost
//   - Errors: ErrInvalidTopology, ErrDimensionMismatch, DimensionError
//
// # Basic Usage
//
//	import (
//	    "math/rand/v2"
//
//	    "github.com/born-ml/mlp/network"
//	)
//
//	func main() {
//	    net, err := network.NewRand([]int{2, 3, 1}, rand.NewPCG(1, 2))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Forward pass
//	    out, err := net.FeedForward([]float64{0.5, 0.25})
//
//	    // Gradient of C = ½‖a − y‖² for one sample
//	    grad, err := net.Backprop(network.Sample{X: []float64{0.5, 0.25}, Y: []float64{1}})
//
//	    // Plain gradient descent step
//	    err = net.ApplyGradient(grad, 0.1)
//	}
//
// # Parameters
//
// Layer l (0-based, counting from the first non-input layer) has a weight
// matrix of shape sizes[l+1] × sizes[l] and a bias vector of length
// sizes[l+1]. NewRand draws every entry from N(0, 1); NewZero leaves them
// at zero.
//
// # Errors
//
// Inputs and targets of the wrong length are reported as a *DimensionError
// which matches ErrDimensionMismatch under errors.Is:
//
//	if _, err := net.FeedForward(x); errors.Is(err, network.ErrDimensionMismatch) {
//	    // x has the wrong length
//	}
package network
