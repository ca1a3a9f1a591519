package models

import "time"

// CalculatorView is a snapshot of one calculator session.
type CalculatorView struct {
	ID         string    `json:"id" example:"5f8a1c2e-9b7d-4c1a-8e3f-2d6b0a9c4e71"`
	Buffer     string    `json:"buffer" example:"2+2"`
	Display    string    `json:"display" example:"4"`
	Expression string    `json:"expression" example:"2+2 ="`
	LastResult string    `json:"last_result" example:"4"`
	State      string    `json:"state" example:"EVALUATED"`
	AngleMode  string    `json:"angle_mode" example:"DEG"`
	Precision  int       `json:"precision" example:"12"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Evaluation is the result of a one-shot evaluation.
type Evaluation struct {
	Expression string `json:"expression" example:"2^10"`
	Display    string `json:"display" example:"1024"`
	AngleMode  string `json:"angle_mode" example:"DEG"`
	Precision  int    `json:"precision" example:"12"`
}
