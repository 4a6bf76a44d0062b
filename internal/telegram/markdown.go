package telegram

import "strings"

// SplitMessage splits text into chunks of at most maxLen runes, preferring
// to break at a newline in the second half of a chunk.
func SplitMessage(text string, maxLen int) []string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return []string{text}
	}

	var parts []string
	for len(runes) > maxLen {
		cut := maxLen
		for i := maxLen - 1; i > maxLen/2; i-- {
			if runes[i] == '\n' {
				cut = i + 1
				break
			}
		}
		parts = append(parts, string(runes[:cut]))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		parts = append(parts, string(runes))
	}
	return parts
}

// FixMarkdown closes unbalanced code fences and inline code so Telegram
// accepts model output that was cut off mid-block.
func FixMarkdown(text string) string {
	if strings.Count(text, "```")%2 != 0 {
		text += "\n```"
	}
	inline := strings.ReplaceAll(text, "```", "")
	if strings.Count(inline, "`")%2 != 0 {
		text += "`"
	}
	return text
}
