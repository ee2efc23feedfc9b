// internal/util/ids.go
// Generator ID untuk X-Request-ID (dipakai middleware RequestID)

package util

import (
	"github.com/google/uuid"
)

func NewID() string {
	return uuid.New().String()
}
