package cache

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "quiz",
			objectType:  "parsed",
			identifier:  "abc",
			paramsKey:   nil,
			expectedKey: "quizlens:quiz:parsed:abc",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "quiz",
			objectType:  "parsed",
			identifier:  "abc",
			paramsKey:   []string{},
			expectedKey: "quizlens:quiz:parsed:abc",
		},
		{
			name:        "with one paramsKey",
			serviceName: "extraction",
			objectType:  "message",
			identifier:  "01HZX",
			paramsKey:   []string{"latest"},
			expectedKey: "quizlens:extraction:message:01HZX:latest",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "render",
			objectType:  "html",
			identifier:  "xyz",
			paramsKey:   []string{"v1", "strict", "links"},
			expectedKey: "quizlens:render:html:xyz:v1_strict_links",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedKey, GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...))
		})
	}
}

func TestParsedQuizKey(t *testing.T) {
	key := ParsedQuizKey("Question 1: What?")

	assert.True(t, strings.HasPrefix(key, "quizlens:quiz:parsed:"))
	assert.Len(t, strings.TrimPrefix(key, "quizlens:quiz:parsed:"), 64)
	assert.Equal(t, key, ParsedQuizKey("Question 1: What?"))
	assert.NotEqual(t, key, ParsedQuizKey("Question 1: What? "))
}

func TestContentHash(t *testing.T) {
	// sha256 of the empty string
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", ContentHash(""))
}
