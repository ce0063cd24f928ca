// Package pagination implements offset-based page tokens (AIP-158). A token
// is base64("offset:N"); it is opaque to clients but deterministic here.
package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/macosusesdk/automationd/internal/apierr"
)

// DefaultPageSize applies when page_size is unset or non-positive.
const DefaultPageSize = 100

// SessionPageSize is the smaller default for session and macro listings.
const SessionPageSize = 50

// EncodeToken encodes a non-negative offset.
func EncodeToken(offset int) string {
	return base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("offset:%d", offset)))
}

// DecodeToken decodes a token back to its offset. Empty or malformed tokens
// are invalid-argument; callers treat the absent token as offset 0 before
// calling this.
func DecodeToken(token string) (int, error) {
	if token == "" {
		return 0, apierr.InvalidArgument(apierr.ReasonInvalidPageToken,
			"page token is empty", nil)
	}
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, apierr.InvalidArgument(apierr.ReasonInvalidPageToken,
			"malformed page token", map[string]string{"pageToken": token})
	}
	payload := string(raw)
	if !strings.HasPrefix(payload, "offset:") {
		return 0, apierr.InvalidArgument(apierr.ReasonInvalidPageToken,
			"malformed page token", map[string]string{"pageToken": token})
	}
	offset, err := strconv.Atoi(strings.TrimPrefix(payload, "offset:"))
	if err != nil || offset < 0 {
		return 0, apierr.InvalidArgument(apierr.ReasonInvalidPageToken,
			"malformed page token", map[string]string{"pageToken": token})
	}
	return offset, nil
}

// Normalize returns the effective page size.
func Normalize(pageSize, defaultSize int32) int {
	if pageSize <= 0 {
		return int(defaultSize)
	}
	return int(pageSize)
}

// Page slices a deterministically sorted list: it decodes the token, returns
// the [offset, offset+size) window and a next token iff more items remain.
func Page[T any](items []T, pageSize int32, token string, defaultSize int32) ([]T, string, error) {
	offset := 0
	if token != "" {
		var err error
		offset, err = DecodeToken(token)
		if err != nil {
			return nil, "", err
		}
	}
	size := Normalize(pageSize, defaultSize)
	if offset >= len(items) {
		return nil, "", nil
	}
	end := offset + size
	next := ""
	if end < len(items) {
		next = EncodeToken(end)
	} else {
		end = len(items)
	}
	return items[offset:end], next, nil
}
