package telegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMessageShortTextIsUntouched(t *testing.T) {
	parts := SplitMessage("короткий ответ", 4096)
	require.Len(t, parts, 1)
	assert.Equal(t, "короткий ответ", parts[0])
}

func TestSplitMessageBreaksLongText(t *testing.T) {
	text := strings.Repeat("а", 250)
	parts := SplitMessage(text, 100)

	require.Len(t, parts, 3)
	var total int
	for _, p := range parts {
		assert.LessOrEqual(t, len([]rune(p)), 100)
		total += len([]rune(p))
	}
	assert.Equal(t, 250, total)
}

func TestSplitMessagePrefersNewline(t *testing.T) {
	text := strings.Repeat("строка текста\n", 20)
	for _, p := range SplitMessage(text, 100) {
		assert.True(t, strings.HasSuffix(p, "\n") || p == "",
			"chunk should end at a line break: %q", p)
	}
}

func TestFixMarkdownClosesCodeBlocks(t *testing.T) {
	assert.Equal(t, "```go\nfmt.Println()\n```", FixMarkdown("```go\nfmt.Println()"))
	assert.Equal(t, "уже `закрыто`", FixMarkdown("уже `закрыто`"))
	assert.Equal(t, "незакрытый `код`", FixMarkdown("незакрытый `код"))
}
