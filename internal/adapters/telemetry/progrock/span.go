package progrock

import "github.com/vito/progrock"

// Span implements ports.Span wrapping *progrock.VertexRecorder.
type Span struct {
	vertex *progrock.VertexRecorder
}

// Write streams output to the vertex's stdout stream.
func (s *Span) Write(p []byte) (n int, err error) {
	return s.vertex.Stdout().Write(p)
}

// End marks the vertex as finished successfully.
func (s *Span) End() {
	s.vertex.Done(nil)
}

// RecordError marks the vertex as finished with an error.
func (s *Span) RecordError(err error) {
	s.vertex.Done(err)
}
