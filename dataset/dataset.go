// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset generates training sets for function fitting and
// teacher-student experiments.
//
// Example:
//
//	src := rand.NewPCG(1, 2)
//	data, err := dataset.Generate("square", 1000, src)
//	train, test := dataset.Split(data, 800)
package dataset

import (
	"math/rand/v2"

	"github.com/born-ml/mlp/internal/dataset"
	"github.com/born-ml/mlp/network"
)

// Function is a named target function.
type Function = dataset.Function

// Functions lists the built-in fitting targets.
var Functions = dataset.Functions

// Names returns the sorted names of the built-in functions.
func Names() []string {
	return dataset.Names()
}

// Generate builds n samples for the named built-in function.
func Generate(name string, n int, src rand.Source) ([]network.Sample, error) {
	return dataset.Generate(name, n, src)
}

// FromFunc draws n uniform inputs of length in and pairs each with f(x).
func FromFunc(f func(x []float64) []float64, in, n int, src rand.Source) []network.Sample {
	return dataset.FromFunc(f, in, n, src)
}

// FromScalar is FromFunc for one-input, one-output functions.
func FromScalar(f func(float64) float64, n int, src rand.Source) []network.Sample {
	return dataset.FromScalar(f, n, src)
}

// FromNetwork labels n uniform inputs with the outputs of teacher.
func FromNetwork(teacher *network.Network, n int, src rand.Source) ([]network.Sample, error) {
	return dataset.FromNetwork(teacher, n, src)
}

// Split returns data[:n] and data[n:].
func Split(data []network.Sample, n int) (head, tail []network.Sample) {
	return dataset.Split(data, n)
}
