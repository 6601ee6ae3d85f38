package model

// Employee represents a farm worker.
type Employee struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Card    string `json:"card"` // national ID number
	Role    string `json:"role"`
	Contact string `json:"contact"`
}
