package telegram

import "strings"

// maxMessageRunes stays under the 4096 character sendMessage limit,
// which Telegram counts in UTF-16 units
const maxMessageRunes = 4000

// splitMessage cuts text into chunks of at most limit runes,
// preferring to cut right after a line break
func splitMessage(text string, limit int) []string {
	runes := []rune(text)
	if limit <= 0 || len(runes) <= limit {
		return []string{text}
	}

	parts := make([]string, 0, len(runes)/limit+1)
	for len(runes) > limit {
		cut := limit
		for i := limit - 1; i > 0; i-- {
			if runes[i] == '\n' {
				cut = i + 1
				break
			}
		}

		if chunk := strings.TrimSpace(string(runes[:cut])); chunk != "" {
			parts = append(parts, chunk)
		}
		runes = runes[cut:]
	}
	if chunk := strings.TrimSpace(string(runes)); chunk != "" {
		parts = append(parts, chunk)
	}

	if len(parts) == 0 {
		return []string{text}
	}
	return parts
}
