//go:build !cgo
// +build !cgo

package embedding

import (
	"context"
	"errors"
)

var errNoCGO = errors.New("ONNX embedder requires CGO; build with CGO_ENABLED=1 and the onnxruntime library installed")

// ONNXEmbedder stub for builds without CGO; see onnx.go for the real
// implementation.
type ONNXEmbedder struct{}

// NewONNXEmbedder fails when built without CGO.
func NewONNXEmbedder(_ string, _, _, _ int) (*ONNXEmbedder, error) {
	return nil, errNoCGO
}

// Embed always fails in non-CGO builds.
func (e *ONNXEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return nil, errNoCGO
}

// EmbedBatch always fails in non-CGO builds.
func (e *ONNXEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	return nil, errNoCGO
}

// Dimensions returns zero in non-CGO builds.
func (e *ONNXEmbedder) Dimensions() int {
	return 0
}

// Close is a no-op.
func (e *ONNXEmbedder) Close() error {
	return nil
}
