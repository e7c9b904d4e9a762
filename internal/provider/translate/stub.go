package translate

import "context"

// Stub is a no-network translator for local development. It returns
// empty translations, which the ingestion path treats as "not available".
type Stub struct{}

// NewStub creates a Stub.
func NewStub() *Stub { return &Stub{} }

// Translate returns an empty translation.
func (s *Stub) Translate(_ context.Context, _, _, _ string) (string, error) {
	return "", nil
}
