// Package spamcheck defines request and response types shared by the classifier, the chat
// responder and the web API.
package spamcheck

import (
	"encoding/json"
	"fmt"
	"time"
)

// CheckKind is the source of a check, either the classify api or the chat api
type CheckKind string

// enum of check kinds
const (
	KindClassify CheckKind = "classify"
	KindChat     CheckKind = "chat"
)

// ClassifyRequest is a request to classify email content.
// Email is a pointer to tell a missing (or null) field from an empty string.
type ClassifyRequest struct {
	Email *string `json:"email"`
}

// UnmarshalJSON decodes the request matching the "email" key exactly, "Email" is not the same field
func (r *ClassifyRequest) UnmarshalJSON(data []byte) error {
	val, err := exactField(data, "email")
	if err != nil {
		return err
	}
	r.Email = val
	return nil
}

// ClassifyResponse is a result of email classification.
type ClassifyResponse struct {
	IsSpam          bool    `json:"is_spam"`          // true if spam probability is above the threshold
	SpamProbability float64 `json:"spam_probability"` // 0.0 - 1.0
	HamProbability  float64 `json:"ham_probability"`  // always 1 - SpamProbability
}

func (r ClassifyResponse) String() string {
	spamOrHam := "ham"
	if r.IsSpam {
		spamOrHam = "spam"
	}
	return fmt.Sprintf("%s, spam:%.2f, ham:%.2f", spamOrHam, r.SpamProbability, r.HamProbability)
}

// ChatRequest is a chat message sent to the assistant.
type ChatRequest struct {
	Message *string `json:"message"`
}

// UnmarshalJSON decodes the request matching the "message" key exactly
func (r *ChatRequest) UnmarshalJSON(data []byte) error {
	val, err := exactField(data, "message")
	if err != nil {
		return err
	}
	r.Message = val
	return nil
}

// exactField returns the string value of the case-sensitive key of a json object, nil if the key
// is missing or null. Non-object json and non-string values are errors.
func exactField(data []byte, key string) (*string, error) {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	raw, ok := fields[key]
	if !ok {
		return nil, nil
	}
	var res *string
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("invalid %s field: %w", key, err)
	}
	return res, nil
}

// ChatResponse is the assistant reply.
type ChatResponse struct {
	Response string `json:"response"`
}

// Check is a record of a single check, kept in history
type Check struct {
	Kind        CheckKind `json:"kind"`
	Text        string    `json:"text"`
	Spam        bool      `json:"spam"`
	Probability float64   `json:"probability"`
	Timestamp   time.Time `json:"timestamp"`
}

func (c *Check) String() string {
	spamOrHam := "ham"
	if c.Spam {
		spamOrHam = "spam"
	}
	return fmt.Sprintf("%s: %s (%.1f%%), text:%q", c.Kind, spamOrHam, c.Probability*100, c.Text)
}
