package adapter

import "github.com/gowebpki/jcs"

// JCS canonicalizes JSON documents (RFC 8785) so that equal events produce equal bytes
//
//go:generate mockgen -source=jcs.go -destination=../mocks/jcs.go -package=mocks -mock_names=JCS=MockJCS
type JCS interface {
	Canonicalize(data []byte) ([]byte, error)
}

type rfc8785 struct{}

// NewJCS returns the gowebpki/jcs backed canonicalizer
func NewJCS() JCS {
	return rfc8785{}
}

func (rfc8785) Canonicalize(data []byte) ([]byte, error) {
	return jcs.Transform(data)
}
