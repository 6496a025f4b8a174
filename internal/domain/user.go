package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the authenticated identity supplied by the external auth
// provider. This service never creates users; it only resolves session
// tokens to identities and scopes every mutation by user id.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	CreatedAt time.Time
}
