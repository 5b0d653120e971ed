package fetch

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

const summarizePrompt = `당신은 인기 있는 소셜 미디어 인플루언서입니다.
아래는 유튜브 영상 "%s"의 자막(또는 내용)입니다.
이 내용을 바탕으로 X(구 트위터)에 올릴 매력적이고 핵심적인 요약글을 작성해주세요.

조건:
1. 한국어로 작성하세요.
2. 핵심 내용을 3~5줄 내외로 요약하세요.
3. 문체는 친근하고 매력적으로 ("해요"체 등).
4. 해시태그를 2~3개 포함하세요.
5. 전체 길이는 250자를 넘지 않도록 주의하세요 (링크 제외).

내용:
%s`

// maxContentLen bounds the transcript text that goes into the prompt.
const maxContentLen = 10000

type OpenAI struct {
	client *openai.Client
	model  string
}

func NewOpenAI(apiKey, baseURL, model string) *OpenAI {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &OpenAI{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (o *OpenAI) FetchSummary(ctx context.Context, title, content string) (string, error) {
	resp, err := o.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: o.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: Prompt(title, content),
				},
			},
		})
	if err != nil {
		return "", fmt.Errorf("failed to fetch summary: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("summary response has no choices")
	}

	return resp.Choices[len(resp.Choices)-1].Message.Content, nil
}

// Prompt fills the summarize template. Content beyond maxContentLen runes
// is dropped silently.
func Prompt(title, content string) string {
	runes := []rune(content)
	if len(runes) > maxContentLen {
		content = string(runes[:maxContentLen])
	}

	return fmt.Sprintf(summarizePrompt, title, content)
}
