// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides mini-batch stochastic gradient descent for
// sigmoid networks.
//
// # Overview
//
// This package contains:
//   - SGD: mini-batch Stochastic Gradient Descent with parallel gradient
//     aggregation
//   - Train: one-call shorthand over SGD
//   - Optimizer interface for custom trainers
//
// # Basic Usage
//
//	import (
//	    "math/rand/v2"
//	    "os"
//
//	    "github.com/born-ml/mlp/dataset"
//	    "github.com/born-ml/mlp/network"
//	    "github.com/born-ml/mlp/optim"
//	    "github.com/born-ml/mlp/track"
//	)
//
//	func main() {
//	    src := rand.NewPCG(1, 2)
//	    data, _ := dataset.Generate("square", 1000, src)
//	    net, _ := network.NewRand([]int{1, 4, 1}, src)
//
//	    sgd := optim.NewSGD(net, optim.SGDConfig{
//	        Epochs:        1000,
//	        MiniBatchSize: 20,
//	        Eta:           10,
//	        Tracker:       track.LogRMSE(os.Stdout, data, 1000),
//	        Source:        src,
//	    })
//	    if err := sgd.Train(data); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Update Rule
//
// For each mini-batch of m samples:
//
//	W = W - (eta/m) * Σ ∂C/∂W
//	b = b - (eta/m) * Σ ∂C/∂b
//
// The per-sample gradients are computed concurrently against the
// parameters as they were at the start of the batch, so the result does
// not depend on scheduling. Workers sets the goroutine count; 1 runs the
// batch sequentially.
//
// # Errors
//
// Train checks its inputs before the first update and leaves the network
// untouched on failure:
//   - ErrInvalidBatchSize: MiniBatchSize is not positive or does not divide
//     the dataset size
//   - ErrInvalidEpochs: Epochs is negative
//   - network.ErrDimensionMismatch: a sample does not match the topology
package optim
