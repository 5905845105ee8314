package dto

import "encoding/json"

type UpdateProfileRequest struct {
	Headline   string          `json:"headline,omitempty"`
	City       string          `json:"city,omitempty"`
	Phone      string          `json:"phone,omitempty"`
	Skills     json.RawMessage `json:"skills,omitempty"`
	Education  json.RawMessage `json:"education,omitempty"`
	Experience json.RawMessage `json:"experience,omitempty"`
}
