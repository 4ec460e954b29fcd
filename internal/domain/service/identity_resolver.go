// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"context"

	"dreamtree/internal/domain/entity"
)

// IdentityResolver locates the personal data server hosting a handle.
// Resolve never fails: when the handle's domain or the DID directory cannot be
// reached, it degrades to the default network location and tags the result
// accordingly, so a connect attempt can always proceed.
type IdentityResolver interface {
	// Resolve maps a handle to its personal data server location.
	Resolve(ctx context.Context, handle string) entity.Resolution
}
