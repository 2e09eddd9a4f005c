package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const separator = "|"

// Cursor identifies the last item of a page of date-ordered records.
type Cursor struct {
	Date string
	ID   string
}

// EncodeToken creates a base64 encoded token from a record's date and id.
func EncodeToken(c Cursor) string {
	return EncodeMultiFieldToken(c.Date, c.ID)
}

// DecodeToken parses a token produced by EncodeToken.
func DecodeToken(token string) (Cursor, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return Cursor{}, err
	}
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Cursor{}, fmt.Errorf("invalid pagination token format (split)")
	}
	return Cursor{Date: parts[0], ID: parts[1]}, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields.
func EncodeMultiFieldToken(fields ...string) string {
	return base64.URLEncoding.EncodeToString([]byte(strings.Join(fields, separator)))
}

// DecodeMultiFieldToken decodes a token into its component fields.
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return strings.Split(string(decodedBytes), separator), nil
}

// After reports whether (date, id) sorts after the cursor when records are
// ordered by date descending, then id descending.
func (c Cursor) After(date, id string) bool {
	if date != c.Date {
		return date < c.Date
	}
	return id < c.ID
}
