package metrics

// TokenUsage captures model token counts consumed by a single generation call.
type TokenUsage struct {
	PromptTokens    int32 `json:"promptTokens"`
	CandidateTokens int32 `json:"candidateTokens,omitempty"`
	TotalTokens     int32 `json:"totalTokens"`
}

// IsZero reports whether usage data is absent.
func (u TokenUsage) IsZero() bool {
	return u.PromptTokens == 0 && u.CandidateTokens == 0 && u.TotalTokens == 0
}

// Add accumulates usage across retry attempts.
func (u TokenUsage) Add(other TokenUsage) TokenUsage {
	return TokenUsage{
		PromptTokens:    u.PromptTokens + other.PromptTokens,
		CandidateTokens: u.CandidateTokens + other.CandidateTokens,
		TotalTokens:     u.TotalTokens + other.TotalTokens,
	}
}
