package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID 不带连字符的 uuid，当对外 pid 用
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
