package modelrunner

// EmbeddingsRequest asks the feature model server for frame embeddings of one
// mono or interleaved sample buffer.
type EmbeddingsRequest struct {
	Samples          []float32 `msgpack:"samples"`
	SampleRate       int       `msgpack:"sample_rate"`
	Channels         int       `msgpack:"channels"`
	InputRepr        string    `msgpack:"input_repr"`
	ContentType      string    `msgpack:"content_type"`
	EmbeddingSize    int       `msgpack:"embedding_size"`
	TargetSampleRate int       `msgpack:"target_sample_rate"`
	// HopSize is the frame step in seconds; zero lets the server choose.
	HopSize float64 `msgpack:"hop_size,omitempty"`
}

// EmbeddingsResponse holds one embedding per analysis frame.
type EmbeddingsResponse struct {
	Embeddings [][]float32 `msgpack:"embeddings"`
	Timestamps []float64   `msgpack:"timestamps"`
	Model      string      `msgpack:"model,omitempty"`
}

// ErrorResponse is returned by the server on failure.
type ErrorResponse struct {
	Error string `msgpack:"error"`
}

// ModelInfo describes a model configuration served by the feature model server.
type ModelInfo struct {
	InputRepr     string `msgpack:"input_repr"`
	ContentType   string `msgpack:"content_type"`
	EmbeddingSize int    `msgpack:"embedding_size"`
}

// ModelsResponse lists the configurations the server has loaded.
type ModelsResponse struct {
	Models []ModelInfo `msgpack:"models"`
}
