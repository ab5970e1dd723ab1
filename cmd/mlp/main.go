// Package main provides the mlp command: it generates a dataset, trains a
// sigmoid network on it with mini-batch SGD and logs progress.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/born-ml/mlp/internal/config"
	"github.com/born-ml/mlp/internal/dataset"
	"github.com/born-ml/mlp/internal/network"
	"github.com/born-ml/mlp/internal/optim"
	"github.com/born-ml/mlp/internal/track"
)

const version = "v0.1.0-dev"

// taskStudent trains on the outputs of a random network of the same shape.
const taskStudent = "student"

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("mlp: %v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("mlp", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	task := fs.String("task", "", "Target: "+strings.Join(dataset.Names(), ", ")+" or "+taskStudent)
	sizes := fs.String("sizes", "", "Comma separated layer sizes, e.g. 1,4,1")
	samples := fs.Int("samples", 0, "Training set size")
	epochs := fs.Int("epochs", 0, "Number of epochs")
	batchSize := fs.Int("batch", 0, "Mini-batch size")
	eta := fs.Float64("eta", 0, "Learning rate")
	seed := fs.Uint64("seed", 0, "PRNG seed (0 picks one)")
	logEvery := fs.Int("log-every", 0, "Log every N mini-batches")
	tracker := fs.String("tracker", "", "Progress metric: rmse, error or none")
	workers := fs.Int("workers", 0, "Goroutines per mini-batch (0 uses every core)")
	showVersion := fs.Bool("version", false, "Show version")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "mlp %s\n", version)
		return nil
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}
	layerSizes, err := parseSizes(*sizes)
	if err != nil {
		return err
	}
	cfg.ApplyOverrides(config.Overrides{
		Task:          *task,
		Sizes:         layerSizes,
		Samples:       *samples,
		Epochs:        *epochs,
		MiniBatchSize: *batchSize,
		Eta:           *eta,
		Seed:          *seed,
		LogEvery:      *logEvery,
		Tracker:       *tracker,
		Workers:       *workers,
	})
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}

	return train(cfg, stdout)
}

func train(cfg *config.Config, stdout io.Writer) error {
	src := rand.NewPCG(cfg.Seed, cfg.Seed>>1|1)

	data, err := buildDataset(cfg, src)
	if err != nil {
		return err
	}
	net, err := network.NewRand(cfg.Sizes, src)
	if err != nil {
		return err
	}

	log.Printf("task=%s sizes=%v samples=%d epochs=%d mini_batch_size=%d eta=%g seed=%d",
		cfg.Task, cfg.Sizes, len(data), cfg.Epochs, cfg.MiniBatchSize, cfg.Eta, cfg.Seed)

	sgd := optim.NewSGD(net, optim.SGDConfig{
		Epochs:        cfg.Epochs,
		MiniBatchSize: cfg.MiniBatchSize,
		Eta:           cfg.Eta,
		Tracker:       buildTracker(cfg, data, stdout),
		Source:        src,
		Workers:       cfg.Workers,
	})

	start := time.Now()
	if err := sgd.Train(data); err != nil {
		return fmt.Errorf("training failed: %w", err)
	}
	elapsed := time.Since(start)

	rmse, err := track.RMSE(net, data)
	if err != nil {
		return err
	}
	log.Printf("done elapsed=%s rmse=%.4f", elapsed.Round(time.Millisecond), rmse)
	return nil
}

func buildDataset(cfg *config.Config, src rand.Source) ([]network.Sample, error) {
	if cfg.Task == taskStudent {
		teacher, err := network.NewRand(cfg.Sizes, src)
		if err != nil {
			return nil, err
		}
		return dataset.FromNetwork(teacher, cfg.Samples, src)
	}

	fn, ok := dataset.Functions[cfg.Task]
	if !ok {
		return nil, fmt.Errorf("unknown task %q", cfg.Task)
	}
	if in, out := cfg.Sizes[0], cfg.Sizes[len(cfg.Sizes)-1]; in != fn.In || out != 1 {
		return nil, fmt.Errorf("task %s maps %d inputs to 1 output, sizes %v do not match", fn.Name, fn.In, cfg.Sizes)
	}
	return dataset.Generate(cfg.Task, cfg.Samples, src)
}

func buildTracker(cfg *config.Config, data []network.Sample, w io.Writer) track.Tracker {
	switch cfg.Tracker {
	case config.TrackerRMSE:
		return track.LogRMSE(w, data, cfg.LogEvery)
	case config.TrackerError:
		return track.LogErrorRate(w, data, cfg.LogEvery)
	default:
		return track.Nop()
	}
}

func parseSizes(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	sizes := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("sizes: %w", err)
		}
		sizes[i] = v
	}
	return sizes, nil
}
