// Package openai provides ai.Embedder and ai.Explainer implementations backed
// by OpenAI-compatible HTTP APIs (OpenAI, Ollama, LocalAI, vLLM) through
// langchaingo.
package openai
