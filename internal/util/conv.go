package util

import (
	"strconv"
)

// ParseOptionalUint 解析可选的ID参数，空字符串返回 nil
func ParseOptionalUint(s string) (*uint, error) {
	if s == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return nil, ErrInvalidScope
	}
	v := uint(id)
	return &v, nil
}
