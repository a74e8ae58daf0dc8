// Package bookingcode issues short, human-shareable booking codes such as "26K7QZ".
package bookingcode

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"stay-ledger/internal/pkg/clock"
	"stay-ledger/internal/pkg/errs"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const (
	DefaultLength      = 4
	DefaultMaxAttempts = 8
	DefaultWidenEvery  = 3
)

var ErrCheckFailed = errs.New("booking code existence check failed")

// Checker reports whether a code is already taken.
type Checker interface {
	Exists(ctx context.Context, code string) (bool, error)
}

type CodeGenerationExhaustedError struct {
	Attempts int
}

func (e *CodeGenerationExhaustedError) Error() string {
	return fmt.Sprintf("no free booking code after %d attempts", e.Attempts)
}

type Generator struct {
	checker     Checker
	clock       clock.Clock
	random      io.Reader
	length      int
	maxAttempts int
	widenEvery  int
}

type Option func(*Generator)

func WithLength(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.length = n
		}
	}
}

func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithWidenEvery grows the random part by one character after every n collisions.
func WithWidenEvery(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.widenEvery = n
		}
	}
}

func WithRandom(r io.Reader) Option {
	return func(g *Generator) {
		if r != nil {
			g.random = r
		}
	}
}

func NewGenerator(checker Checker, clk clock.Clock, opts ...Option) *Generator {
	g := &Generator{
		checker:     checker,
		clock:       clk,
		random:      rand.Reader,
		length:      DefaultLength,
		maxAttempts: DefaultMaxAttempts,
		widenEvery:  DefaultWidenEvery,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) Generate(ctx context.Context) (string, error) {
	prefix := g.clock.Now().Format("06")

	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		suffix, err := g.randomString(g.length + attempt/g.widenEvery)
		if err != nil {
			return "", errs.Wrap(err, "read random booking code")
		}
		candidate := prefix + suffix

		taken, err := g.checker.Exists(ctx, candidate)
		if err != nil {
			return "", errs.Mark(errs.Wrap(err, "check booking code "+candidate), ErrCheckFailed)
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", &CodeGenerationExhaustedError{Attempts: g.maxAttempts}
}

func (g *Generator) randomString(n int) (string, error) {
	base := big.NewInt(int64(len(alphabet)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(g.random, base)
		if err != nil {
			return "", err
		}
		out[i] = alphabet[idx.Int64()]
	}
	return string(out), nil
}
