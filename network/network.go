// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package network

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/mlp/internal/network"
)

// Network is a fully connected sigmoid network.
type Network = network.Network

// Sample is a training pair of input X and expected output Y.
type Sample = network.Sample

// Gradient holds per-layer partial derivatives of the cost.
type Gradient = network.Gradient

// DimensionError reports a vector or matrix of the wrong size.
type DimensionError = network.DimensionError

// Errors.
var (
	ErrInvalidTopology   = network.ErrInvalidTopology
	ErrDimensionMismatch = network.ErrDimensionMismatch
)

// New creates a network with N(0, 1) initialized parameters drawn from a
// randomly seeded source.
//
// Example:
//
//	net, err := network.New([]int{784, 30, 10})
func New(sizes []int) (*Network, error) {
	return network.New(sizes)
}

// NewRand creates a network with N(0, 1) initialized parameters drawn from
// src.
//
// Example:
//
//	net, err := network.NewRand([]int{1, 4, 1}, rand.NewPCG(1, 2))
func NewRand(sizes []int, src rand.Source) (*Network, error) {
	return network.NewRand(sizes, src)
}

// NewZero creates a network whose weights and biases are all zero.
func NewZero(sizes []int) (*Network, error) {
	return network.NewZero(sizes)
}

// FromParams creates a network from copies of the given weights and biases.
func FromParams(weights []*mat.Dense, biases []*mat.VecDense) (*Network, error) {
	return network.FromParams(weights, biases)
}

// Sigmoid returns 1 / (1 + e^(−z)).
func Sigmoid(z float64) float64 {
	return network.Sigmoid(z)
}

// SigmoidPrime returns σ(z)·(1 − σ(z)).
func SigmoidPrime(z float64) float64 {
	return network.SigmoidPrime(z)
}
