package redis

import (
	"fmt"

	"github.com/psellars/cardtable/internal/model"
)

// Key prefix for all session data
const keyPrefix = "cardtable"

// gameKey returns the Redis key for a game record
func gameKey(code model.GameCode) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, code)
}
