package helpers

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/contractors/internal/pkg/apperrors"
)

const (
	DefaultPage     = 1 // Default page is 1-based
	DefaultPageSize = 10
)

// CalculateOffset converts a 1-based page into a row offset.
// Callers validate page >= 1 and size >= 0 beforehand. An offset that does
// not fit a signed 64-bit OFFSET is rejected instead of wrapping around.
func CalculateOffset(page, size int) (uint64, error) {
	hi, offset := bits.Mul64(uint64(page-1), uint64(size))
	if hi != 0 || offset > math.MaxInt64 {
		return 0, apperrors.NewValidationError(fmt.Sprintf("offset of page %d with page_size %d is out of range", page, size))
	}
	return offset, nil
}

// ParseIDParam reads a base-10 int64 path parameter.
func ParseIDParam(c *gin.Context, key string) (int64, error) {
	raw := c.Param(key)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return id, nil
}
