package fetch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrompt(t *testing.T) {
	t.Run("title and content are embedded", func(t *testing.T) {
		prompt := Prompt("Test Video", "제목: Test Video\n\n설명: desc text")

		assert.Contains(t, prompt, `유튜브 영상 "Test Video"`)
		assert.Contains(t, prompt, "설명: desc text")
	})

	t.Run("long content is truncated silently", func(t *testing.T) {
		content := strings.Repeat("가", 12000)

		prompt := Prompt("Test Video", content)

		assert.Contains(t, prompt, strings.Repeat("가", 10000))
		assert.NotContains(t, prompt, strings.Repeat("가", 10001))
	})

	t.Run("short content is kept verbatim", func(t *testing.T) {
		prompt := Prompt("Test Video", "짧은 내용")

		assert.True(t, strings.HasSuffix(prompt, "내용:\n짧은 내용"))
	})
}
