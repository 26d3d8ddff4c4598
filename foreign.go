package guuid

import (
	gofrs "github.com/gofrs/uuid/v5"
	"github.com/google/uuid"
)

// fromForeign converts identifier types from other UUID packages. Both keep
// their bytes in RFC 4122 network order.
func fromForeign(v any) (UUID, bool) {
	switch v := v.(type) {
	case uuid.UUID:
		return FromRFC4122(v), true
	case *uuid.UUID:
		return FromRFC4122(*v), true
	case gofrs.UUID:
		return FromRFC4122(v), true
	case *gofrs.UUID:
		return FromRFC4122(*v), true
	}
	return Nil, false
}

// FromGoogle converts a github.com/google/uuid value.
func FromGoogle(u uuid.UUID) UUID {
	return FromRFC4122(u)
}

// Google converts u to a github.com/google/uuid value with the same text.
func (u UUID) Google() uuid.UUID {
	return uuid.UUID(u.RFC4122())
}
