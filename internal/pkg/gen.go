package pkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateGameID - generates a unique identifier for the game.
func GenerateGameID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(99999999))
	if err != nil {
		return "", fmt.Errorf("failed to generate random number: %w", err)
	}

	return n.String(), nil
}
