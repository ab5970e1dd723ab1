// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package track provides progress callbacks for the SGD trainer.
//
// A Tracker is called synchronously after every mini-batch update with the
// zero-based epoch and mini-batch index:
//
//	tracker := track.Func(func(m track.Model, epoch, batch int) {
//	    fmt.Println(epoch, batch)
//	})
//
// LogRMSE and LogErrorRate write one line per call in the form
// "EEE.BBBB: value":
//
//	000.0000: 0.2831
//	001.0000: 0.1407
package track

import (
	"io"

	"github.com/born-ml/mlp/internal/track"
	"github.com/born-ml/mlp/network"
)

// Model is the read-only view of a network handed to trackers.
type Model = track.Model

// Tracker receives a notification after each mini-batch update.
type Tracker = track.Tracker

// Func adapts an ordinary function to the Tracker interface.
type Func = track.Func

// Evaluator computes a scalar diagnostic for a model.
type Evaluator = track.Evaluator

// Nop returns a tracker that does nothing.
func Nop() Tracker {
	return track.Nop()
}

// Periodic forwards the 1st, (n+1)-th, (2n+1)-th, ... call to t.
func Periodic(t Tracker, n int) Tracker {
	return track.Periodic(t, n)
}

// Logger writes eval(m) to w on every call.
func Logger(w io.Writer, eval Evaluator) Tracker {
	return track.Logger(w, eval)
}

// RMSE returns the root mean squared Euclidean distance between the model
// outputs and the targets of data.
func RMSE(m Model, data []network.Sample) (float64, error) {
	return track.RMSE(m, data)
}

// ErrorRate returns the fraction of samples whose largest output is not at
// the index of the largest target.
func ErrorRate(m Model, data []network.Sample) (float64, error) {
	return track.ErrorRate(m, data)
}

// LogRMSE logs the RMSE over data to w every period mini-batches.
//
// Example:
//
//	tracker := track.LogRMSE(os.Stdout, data, 100)
func LogRMSE(w io.Writer, data []network.Sample, period int) Tracker {
	return track.LogRMSE(w, data, period)
}

// LogErrorRate logs the classification error rate over data to w every
// period mini-batches.
func LogErrorRate(w io.Writer, data []network.Sample, period int) Tracker {
	return track.LogErrorRate(w, data, period)
}
