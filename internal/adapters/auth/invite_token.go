package auth

import (
	"crypto/rand"
	"fmt"

	"eventticketing/internal/domain"
)

// inviteAlphabet is the 64-symbol URL-safe alphabet used for invite tokens.
const inviteAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"

// InviteTokenLength is the number of symbols in an invite token (96 bits of entropy).
const InviteTokenLength = 16

type inviteTokenIssuer struct{}

// NewInviteTokenIssuer returns an InviteTokenIssuer backed by crypto/rand.
func NewInviteTokenIssuer() domain.InviteTokenIssuer {
	return inviteTokenIssuer{}
}

func (inviteTokenIssuer) Issue() (string, error) {
	buf := make([]byte, InviteTokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate invite token: %w", err)
	}
	// 64 symbols divide 256 evenly, so masking keeps the distribution uniform.
	for i, b := range buf {
		buf[i] = inviteAlphabet[b&63]
	}
	return string(buf), nil
}
