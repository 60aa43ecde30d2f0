// Package llamacpp wraps a local llama.cpp server as the campaign's text
// generation capability.
//
// The model load is lazy and happens at most once per client: the first
// Generate call spawns the configured llama-server binary on the model
// artifact and waits for its health endpoint, and every later call reuses the
// running server. Loading a multi-gigabyte artifact is expensive, so reuse is
// mandatory for acceptable latency across a campaign.
//
// # Entry points
//
// NewClient: construct a client from Config.
// Client.Generate: synchronous prompt-to-text completion.
// Client.HealthCheck: probe the running server.
// Client.Close: stop the managed server process.
//
// WithEndpoint points the client at an already-running completion server and
// disables process management; tests use it with httptest.
package llamacpp
