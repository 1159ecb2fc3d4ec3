package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// StaticGenerator выдает один и тот же код, только для непродовых окружений.
type StaticGenerator struct {
	code string
}

func NewStaticGenerator(code string) *StaticGenerator {
	return &StaticGenerator{code: code}
}

func (g *StaticGenerator) Generate() (string, error) {
	return g.code, nil
}

type RandomGenerator struct {
	length int
}

func NewRandomGenerator(length int) *RandomGenerator {
	return &RandomGenerator{length: length}
}

func (g *RandomGenerator) Generate() (string, error) {
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(g.length)), nil)
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("generate random code: %w", err)
	}
	return fmt.Sprintf("%0*d", g.length, n), nil
}
