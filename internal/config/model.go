package config

import "math/big"

// Messages holds every piece of user-facing text the program prints.
type Messages struct {
	PromptA           string
	PromptB           string
	OrderingViolation string

	// Header renders the line printed before the odd numbers.
	Header func(a, b *big.Int) string
}

// Clone returns a shallow copy that can be modified without affecting m.
func (m *Messages) Clone() *Messages {
	c := *m
	return &c
}
