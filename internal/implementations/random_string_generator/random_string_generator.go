package randomstringgenerator

import (
	"accounts/internal/core/domain/user"
	"math/rand"
	"time"
)

type Generator struct {
	chars []rune
}

func NewGenerator() *Generator {
	rand.Seed(time.Now().UnixNano())
	return &Generator{
		chars: []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"),
	}
}

func (g *Generator) GenerateActivationToken() user.Token {
	b := make([]rune, 32)
	for i := range b {
		b[i] = g.chars[rand.Intn(len(g.chars))]
	}
	return user.Token(b)
}
