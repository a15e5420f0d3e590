package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// ==================== ORDER NUMBER ====================

// GenerateOrderNumber builds a human-readable order number.
// Format: ORD + millisecond timestamp + random 0-999 suffix. Uniqueness is
// ultimately guaranteed by the orders.order_number constraint, not here.
func GenerateOrderNumber() string {
	return fmt.Sprintf("ORD%d%d", time.Now().UnixMilli(), rand.Intn(1000))
}
