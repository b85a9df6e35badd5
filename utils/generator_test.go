package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAccessCodeShape(t *testing.T) {
	for i := 0; i < 50; i++ {
		code := GenerateAccessCode()
		assert.Len(t, code, accessCodeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(letterBytes, r), "unexpected rune %q in %q", r, code)
		}
	}
}
