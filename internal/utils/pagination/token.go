// Package pagination implements cursor tokens for lists ordered by date.
package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/rental_management_app/internal/apperrors"
)

const dateFormat = "2006-01-02"

// EncodeToken creates a base64 encoded token from the date and id of the
// last item of a page.
func EncodeToken(date time.Time, id string) string {
	tokenStr := fmt.Sprintf("%s|%s", date.Format(dateFormat), id)
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses the base64 encoded token back into a date and id.
func DecodeToken(token string) (time.Time, string, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (split)")
	}
	date, err := time.ParseInLocation(dateFormat, parts[0], time.UTC)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}
	return date, parts[1], nil
}

// Paginate returns the page of items following the item named by token.
// items must already be in display order. A limit of zero or less returns
// everything after the cursor. next is empty on the last page.
func Paginate[T any](items []T, date func(T) time.Time, id func(T) string, limit int, token string) (page []T, next string, err error) {
	start := 0
	if token != "" {
		tokDate, tokID, err := DecodeToken(token)
		if err != nil {
			return nil, "", apperrors.NewValidationError("pageToken", err.Error())
		}
		start = -1
		for i, item := range items {
			if id(item) == tokID && date(item).Equal(tokDate) {
				start = i + 1
				break
			}
		}
		if start < 0 {
			return nil, "", apperrors.NewValidationError("pageToken", "token does not match any record")
		}
	}
	if limit <= 0 || start+limit >= len(items) {
		return items[start:], "", nil
	}
	end := start + limit
	last := items[end-1]
	return items[start:end], EncodeToken(date(last), id(last)), nil
}
