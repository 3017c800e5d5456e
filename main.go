package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/nvr-ai/go-detect/config"
	"github.com/nvr-ai/go-detect/inference"
	"github.com/nvr-ai/go-detect/models/postprocess"
	"github.com/nvr-ai/go-detect/models/tinyyolo"
	"github.com/nvr-ai/go-detect/util"
)

const (
	// DefaultInputDir is where dumped detector tensors are read from.
	DefaultInputDir = "tensors"
)

func main() {
	var (
		cfgPath  string
		inputDir string
	)
	flag.StringVar(&cfgPath, "config", "", "Path to TOML config file")
	flag.StringVar(&inputDir, "input", DefaultInputDir, "Directory of raw .bin tensor dumps, one per image")
	flag.Parse()

	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.Unmarshal(cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: cfg.Runtime.Level(),
	}))
	slog.SetDefault(logger)

	if err := run(cfg, inputDir); err != nil {
		slog.Error("exiting", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.ConfigFile, inputDir string) error {
	// Bad thresholds are a configuration bug and abort here, before any
	// tensor is touched.
	model, err := tinyyolo.NewModel(tinyyolo.Config{
		ConfidenceThreshold: cfg.Detection.ConfidenceThreshold,
	})
	if err != nil {
		return err
	}
	pipeline, err := inference.NewPipeline(model, &postprocess.NMSConfig{
		MaxDetections: cfg.Detection.MaxDetections,
		IoUThreshold:  cfg.Detection.IOUThreshold,
	})
	if err != nil {
		return err
	}

	tensors, err := util.LoadDirectoryTensorFiles(inputDir)
	if err != nil {
		return err
	}
	slog.Info("loaded tensors", "dir", inputDir, "count", len(tensors))

	frames := make([]inference.Frame, len(tensors))
	for i, tf := range tensors {
		frames[i] = inference.Frame{Name: tf.Name, Tensor: tf.Data}
	}

	started := time.Now()
	results, err := pipeline.ProcessBatch(context.Background(), frames, cfg.Runtime.Workers)
	if err != nil {
		return err
	}

	for _, res := range results {
		if res.Err != nil {
			// One undecodable image must not take the batch down.
			slog.Error("decode failed", "image", res.Name, "error", res.Err)
			continue
		}
		for _, det := range res.Detections {
			// Box coordinates are in 416x416 model input space; scale by
			// native/model dimensions before drawing on the source image.
			slog.Info("detection",
				"image", res.Name,
				"label", det.Label,
				"confidence", fmt.Sprintf("%.3f", det.Confidence),
				"x", fmt.Sprintf("%.1f", det.Box.X),
				"y", fmt.Sprintf("%.1f", det.Box.Y),
				"w", fmt.Sprintf("%.1f", det.Box.Width),
				"h", fmt.Sprintf("%.1f", det.Box.Height),
			)
		}
	}

	slog.Info("done", "images", len(results), "elapsed", time.Since(started))
	return nil
}
