// Package embedding produces fixed-length text embeddings. Backends: a local
// ONNX model, remote Ollama or OpenAI-compatible APIs, and a deterministic
// mock. All backends return L2-normalized vectors of a fixed dimensionality.
package embedding

import "context"

// Embedder turns text into a fixed-length vector. Embed and EmbedBatch must
// return vectors of exactly Dimensions() length. EmbedBatch is
// order-preserving: result i is the embedding of texts[i], always 1:1 with
// the input.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	Dimensions() int
	Close() error
}
