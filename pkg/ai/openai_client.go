// pkg/ai/openai_client.go

package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"arborlog/entities"
)

const (
	failureMsg   = "Failed to fetch AI insights. Please check your connection."
	noInsightMsg = "No specific insights available at this time."
)

type openAI struct {
	endpoint string
	key      string
	model    string
}

func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{endpoint: endpoint, key: key, model: model}
}

func (c *openAI) Advise(r *entities.TreeRecord) string {
	type chatReq struct {
		Model       string              `json:"model"`
		Messages    []map[string]string `json:"messages"`
		Temperature float64             `json:"temperature"`
	}
	reqBody := chatReq{
		Model: c.model,
		Messages: []map[string]string{
			{"role": "system", "content": "You are an expert arborist who writes concise, actionable care recommendations."},
			{"role": "user", "content": renderAdvicePrompt(r)},
		},
		Temperature: 0.2,
	}

	b, _ := json.Marshal(reqBody)
	httpc := &http.Client{Timeout: 25 * time.Second}
	req, _ := http.NewRequest("POST", strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpc.Do(req)
	if err != nil {
		return failureMsg
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return failureMsg
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || len(out.Choices) == 0 {
		return failureMsg
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return noInsightMsg
	}
	return content
}

func renderAdvicePrompt(r *entities.TreeRecord) string {
	desc := r.HealthDescription
	if desc == "" {
		desc = "No description provided"
	}
	qty := "Not specified"
	if r.ProductionQuantity != nil {
		qty = fmt.Sprintf("%g", *r.ProductionQuantity)
	}
	notes := r.Notes
	if notes == "" {
		notes = "None"
	}
	return fmt.Sprintf(`As an expert arborist, provide a concise (max 100 words) care recommendation for this tree:
- Tree Species: %s
- Current Health Status: %s
- Health Description: %s
- Current Fruit Production Level: %s
- Recent Yield Quantity: %s
- Observation Notes: %s

Format the response with bullet points if necessary. Focus on immediate actions based on the specific health description and yield data provided.`,
		r.Species, r.Health, desc, r.Production, qty, notes)
}
