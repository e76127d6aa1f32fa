package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := map[string]string{
		"Men's T-Shirt!":      "mens-t-shirt",
		"Structured  Leather": "structured-leather",
		"--Baroque Pearls--":  "baroque-pearls",
	}
	for input, want := range cases {
		assert.Equal(t, want, GenerateSlug(input))
	}
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 42, ParseInt("42", 0))
	assert.Equal(t, 7, ParseInt("", 7))
	assert.Equal(t, 7, ParseInt("abc", 7))
}
