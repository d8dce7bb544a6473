package ai_helper

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"benefits-advisor-core/svc/models"
)

const ADVISOR_STYLE = `You are a benefits advisor writing for an employee reviewing their enrollment recommendations.
Write in second person, plain language, no jargon, no legal disclaimers.
Never invent numbers: only reference figures that appear in the data you are given.
Keep every explanation to one or two sentences.`

type LLMModel string

const (
	GPT_LATEST LLMModel = openai.GPT4oMini
)

// AIHelper optionally rewrites the engine's templated rationales into
// warmer advisor prose. The engine never depends on it; callers fall back
// to the templated text on any error.
type AIHelper struct {
	client *openai.Client
}

// Constructor for AIHelper
func NewAIHelper(apiKey string) *AIHelper {
	client := openai.NewClient(apiKey)
	return &AIHelper{
		client: client,
	}
}

// RefineRationale rewrites one recommendation's rationale using the
// recommendation's own score, tier, and coverage details as grounding.
func (aih *AIHelper) RefineRationale(ctx context.Context, profile models.UserProfile, rec models.Recommendation) (string, error) {
	recJson, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}

	response, err := aih.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: string(GPT_LATEST),
		Messages: []openai.ChatCompletionMessage{
			{Role: "system", Content: ADVISOR_STYLE},
			{Role: "user", Content: fmt.Sprintf("I am %d years old with %d dependents. Rewrite the rationale for this recommendation: %s", profile.Age, profile.Dependents, recJson)},
		},
	})
	if err != nil {
		return "", err
	}

	return response.Choices[0].Message.Content, nil
}

// SummarizeRecommendations produces a short overview paragraph covering the
// top recommendations of a finished session.
func (aih *AIHelper) SummarizeRecommendations(ctx context.Context, profile models.UserProfile, recs []models.Recommendation) (string, error) {
	top := recs
	if len(top) > 5 {
		top = top[:5]
	}
	recsJson, err := json.Marshal(top)
	if err != nil {
		return "", err
	}

	response, err := aih.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: string(GPT_LATEST),
		Messages: []openai.ChatCompletionMessage{
			{Role: "system", Content: ADVISOR_STYLE},
			{Role: "user", Content: fmt.Sprintf("Summarize these enrollment recommendations in one short paragraph: %s", recsJson)},
		},
	})
	if err != nil {
		return "", err
	}

	return response.Choices[0].Message.Content, nil
}
