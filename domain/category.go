package domain

import "github.com/google/uuid"

// Category groups transactions, e.g. "Groceries".
type Category struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Description  *string       `json:"description,omitempty"`
	Color        string        `json:"color"`
	Icon         []byte        `json:"icon,omitempty"`
	Transactions []Transaction `json:"transactions,omitempty"`
}

func (c Category) GetID() uuid.UUID        { return c.ID }
func (c Category) GetName() string         { return c.Name }
func (c Category) GetDescription() *string { return c.Description }
func (c Category) GetColor() string        { return c.Color }
func (c Category) GetIcon() []byte         { return c.Icon }
