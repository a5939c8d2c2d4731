package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/nianfudong/RCC-loss/loss"
	"github.com/nianfudong/RCC-loss/tensor"
)

// request is the eval input: [N][C] coordinate rows for both inputs.
type request struct {
	Layer       string      `json:"layer"`
	Predictions [][]float64 `json:"predictions"`
	Targets     [][]float64 `json:"targets"`
	Upstream    *float64    `json:"upstream,omitempty"`  // defaults to 1
	Propagate   []bool      `json:"propagate,omitempty"` // defaults to [true, true]
}

type response struct {
	Layer     string       `json:"layer"`
	Loss      float64      `json:"loss"`
	Gradients gradientsOut `json:"gradients"`
}

type gradientsOut struct {
	Predictions [][]float64 `json:"predictions,omitempty"`
	Targets     [][]float64 `json:"targets,omitempty"`
}

func evalFile(path string, stdout io.Writer, logger *slog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	var req request
	if err := json.NewDecoder(f).Decode(&req); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	resp, err := evaluate(req, logger)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

// evaluate runs one forward and one backward pass for req.
func evaluate(req request, logger *slog.Logger) (*response, error) {
	if req.Layer == "" {
		req.Layer = loss.RelevantLossType
	}
	upstream := 1.0
	if req.Upstream != nil {
		upstream = *req.Upstream
	}
	propagate := req.Propagate
	if propagate == nil {
		propagate = []bool{true, true}
	}

	layer, err := loss.DefaultRegistry.New(req.Layer, loss.DefaultConfig())
	if err != nil {
		return nil, err
	}

	pred, err := toBlob(req.Predictions)
	if err != nil {
		return nil, fmt.Errorf("predictions: %w", err)
	}
	truth, err := toBlob(req.Targets)
	if err != nil {
		return nil, fmt.Errorf("targets: %w", err)
	}

	start := time.Now()
	out, err := layer.Forward(pred, truth)
	if err != nil {
		return nil, err
	}
	logger.Debug("forward", "layer", layer.Type(), "shape", pred.Shape(), "loss", out.Item(0), "elapsed", time.Since(start))

	g, err := tensor.FromSlice([]float64{upstream}, tensor.Shape{1})
	if err != nil {
		return nil, err
	}
	grads, err := layer.Backward(g, propagate, pred, truth)
	if err != nil {
		return nil, err
	}
	logger.Debug("backward", "layer", layer.Type(), "upstream", upstream, "propagate", propagate)

	return &response{
		Layer: layer.Type(),
		Loss:  out.Item(0),
		Gradients: gradientsOut{
			Predictions: fromBlob(grads[0]),
			Targets:     fromBlob(grads[1]),
		},
	}, nil
}

// toBlob packs rows into an (N, C, 1, 1) float64 buffer.
func toBlob(rows [][]float64) (*tensor.RawTensor, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no samples")
	}
	channels := len(rows[0])
	data := make([]float64, 0, len(rows)*channels)
	for n, row := range rows {
		if len(row) != channels {
			return nil, fmt.Errorf("sample %d has %d channels, sample 0 has %d", n, len(row), channels)
		}
		data = append(data, row...)
	}
	return tensor.FromSlice(data, tensor.Shape{len(rows), channels, 1, 1})
}

// fromBlob unpacks a buffer into [N][C] rows; nil stays nil.
func fromBlob(raw *tensor.RawTensor) [][]float64 {
	if raw == nil {
		return nil
	}
	rows := make([][]float64, raw.Num())
	for n := range rows {
		rows[n] = make([]float64, raw.Channels())
		for c := range rows[n] {
			rows[n][c] = raw.At(n, c)
		}
	}
	return rows
}
