package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTimestampWithPrefix(t *testing.T) {
	id := GenerateTimestampWithPrefix("RV")

	assert.True(t, strings.HasPrefix(id, "RV-"))
	assert.NotEqual(t, id, GenerateTimestampWithPrefix("RV"))
}

func TestSubdomainFromHost(t *testing.T) {
	testCases := []struct {
		host     string
		expected string
	}{
		{host: "demo.eventmate.com.br", expected: "demo"},
		{host: "demo.eventmate.com.br:8080", expected: "demo"},
		{host: "demo.localhost:3000", expected: ""},
		{host: "eventmate.com", expected: ""},
		{host: "localhost", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.host, func(t *testing.T) {
			assert.Equal(t, tc.expected, SubdomainFromHost(tc.host))
		})
	}
}
