// Package compress provides optional byte-buffer compressors for wireval
// payloads. They are deliberately siblings of the codec rather than hooks
// inside encode.go/decode.go's recursive descent (spec's design note: expose them as
// byte-buffer transformers, applied to an already-encoded payload, not
// woven into the tag stream itself).
//
// Grounded on _examples/bureau-foundation-bureau/lib/artifactstore's
// tagged-compressor-identity pattern: a one-byte tag identifies which
// algorithm produced a chunk, so a decompressor never has to guess.
package compress

import "fmt"

// Compressor transforms a byte buffer to and from a compressed form
// self-describing enough to reverse without external metadata.
type Compressor interface {
	// Tag identifies this compressor. It is not written by Compress
	// itself; callers that store multiple compressors' output in one
	// stream are expected to prefix it themselves, mirroring
	// artifactstore's chunk-header convention.
	Tag() byte
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// Registry maps a tag byte back to the Compressor that produced it.
type Registry struct {
	byTag map[byte]Compressor
}

// NewRegistry returns a Registry pre-populated with the given compressors.
func NewRegistry(compressors ...Compressor) *Registry {
	r := &Registry{byTag: make(map[byte]Compressor, len(compressors))}
	for _, c := range compressors {
		r.Register(c)
	}
	return r
}

// Register adds or replaces the compressor for its own tag.
func (r *Registry) Register(c Compressor) {
	r.byTag[c.Tag()] = c
}

// Get looks up the compressor registered for tag.
func (r *Registry) Get(tag byte) (Compressor, bool) {
	c, ok := r.byTag[tag]
	return c, ok
}

// Decompress looks up the compressor for the given tag and applies its
// Decompress method, returning an error if no compressor is registered
// for that tag.
func (r *Registry) Decompress(tag byte, data []byte) ([]byte, error) {
	c, ok := r.Get(tag)
	if !ok {
		return nil, fmt.Errorf("compress: no compressor registered for tag %d", tag)
	}
	return c.Decompress(data)
}
