package pagination

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	cursor := Cursor{Date: "2024-05-03", ID: "8d1f6c1e-8b77-4a52-9b8e-8b0a3c0d6f11"}

	token := EncodeToken(cursor)
	assert.NotEmpty(t, token, "Token should not be empty")

	decoded, err := DecodeToken(token)
	assert.NoError(t, err)
	assert.Equal(t, cursor, decoded)
}

func TestDecodeTokenError(t *testing.T) {
	_, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	noSeparator := base64.URLEncoding.EncodeToString([]byte("2024-05-03"))
	_, err = DecodeToken(noSeparator)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	emptyID := EncodeMultiFieldToken("2024-05-03", "")
	_, err = DecodeToken(emptyID)
	assert.Error(t, err)
}

func TestMultiFieldToken(t *testing.T) {
	token := EncodeMultiFieldToken("a", "b", "c")
	parts, err := DecodeMultiFieldToken(token)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, parts)
}

func TestCursorAfter(t *testing.T) {
	c := Cursor{Date: "2024-05-10", ID: "m"}

	assert.True(t, c.After("2024-05-09", "z"), "older date comes after")
	assert.False(t, c.After("2024-05-11", "a"), "newer date comes before")
	assert.True(t, c.After("2024-05-10", "a"), "same date, smaller id comes after")
	assert.False(t, c.After("2024-05-10", "m"), "the cursor itself is not after")
	assert.False(t, c.After("2024-05-10", "z"))
}
