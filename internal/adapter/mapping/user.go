package mapping

import (
	"strings"

	"github.com/eslsoft/examprep/internal/entity"
)

// UserIDHeader carries the signed-in user's identity.
const UserIDHeader = "X-User-Id"

// UserIDMetadataKey is UserIDHeader as gRPC metadata, which only has lowercase keys.
var UserIDMetadataKey = strings.ToLower(UserIDHeader)

// FromUserID trims a transport-supplied user id and rejects blanks.
func FromUserID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", entity.ErrInvalidUserID
	}
	return id, nil
}
