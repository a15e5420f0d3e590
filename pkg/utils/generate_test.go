package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrderNumber(t *testing.T) {
	number := GenerateOrderNumber()

	assert.True(t, strings.HasPrefix(number, "ORD"), "got %s", number)
	// ORD + 13 digit millisecond timestamp + 1 to 3 digit suffix
	assert.GreaterOrEqual(t, len(number), len("ORD")+13+1)
	for _, c := range number[3:] {
		assert.True(t, c >= '0' && c <= '9', "non-digit in %s", number)
	}
}

func TestGenerateSessionToken(t *testing.T) {
	token := GenerateSessionToken()

	require.NotEqual(t, uuid.Nil, token)
	assert.NotEqual(t, token, GenerateSessionToken())
}

func TestParseUUID(t *testing.T) {
	id := uuid.New()

	parsed, err := ParseUUID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseUUID("not-a-uuid")
	assert.Error(t, err)
}
