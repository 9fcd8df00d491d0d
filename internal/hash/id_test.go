package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigest(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty body", "", 0xef46db3751d8e999},
		{"short body", "test", 0x4fdcca5ddb678139},
		{"long body", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, Digest([]byte(tt.data)))
			assert.Equal(t, tt.id, DigestString(tt.data))
		})
	}
}

func TestDigest_DiffersOnSingleTokenChange(t *testing.T) {
	assert.NotEqual(t, DigestString("0:10,2,0"), DigestString("0:10,2,1"))
}

func TestHex(t *testing.T) {
	assert.Equal(t, "ef46db3751d8e999", Hex(0xef46db3751d8e999))
	assert.Equal(t, "000000000000000f", Hex(0xf))
	assert.Equal(t, "0000000000000000", Hex(0))
	assert.Equal(t, "ffffffffffffffff", Hex(^uint64(0)))
	assert.Equal(t, "1000000000000000", Hex(1<<60))
}
