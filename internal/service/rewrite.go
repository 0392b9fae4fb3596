package service

import (
	"context"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const rewriteSystemPrompt = "You are an expert goal-setting assistant. " +
	"Your job is to take vague goals and make them specific, measurable, " +
	"achievable, relevant, and time-bound (SMART). Keep your response to a single sentence."

// RewriteService turns vague goal text into a single SMART sentence
// via a chat completion. Every failure path returns the original text:
// the rewrite is a nicety, never a gate.
type RewriteService struct {
	client *openai.Client
	model  string
}

func NewRewriteService(apiKey, model string) *RewriteService {
	var client *openai.Client
	if apiKey != "" {
		client = openai.NewClient(apiKey)
	}
	if model == "" {
		model = openai.GPT4oMini
	}

	return &RewriteService{
		client: client,
		model:  model,
	}
}

func (s *RewriteService) Rewrite(ctx context.Context, vague string) string {
	if s.client == nil {
		slog.Info("rewrite skipped (no OPENAI_API_KEY), returning original text")
		return vague
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: rewriteSystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: `Turn this vague goal into a specific, actionable 1-sentence goal: "` + vague + `"`,
			},
		},
		Temperature: 1,
		MaxTokens:   100,
	})
	if err != nil {
		slog.Warn("goal rewrite failed, returning original text", "error", err)
		return vague
	}

	if len(resp.Choices) == 0 {
		return vague
	}

	rewritten := strings.TrimSpace(resp.Choices[0].Message.Content)
	if rewritten == "" {
		return vague
	}
	return rewritten
}
