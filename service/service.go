// Package service holds the board, note and user operations. Every call takes
// the owner explicitly; nothing is read from request state.
package service

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	db         *gorm.DB
	freeTags   bool
	bcryptCost int
	intn       func(n int) int
	now        func() time.Time
}

type Option func(*Service)

// WithFreeTags stores tags as comma separated free text instead of a single
// enumerated value.
func WithFreeTags(freeTags bool) Option {
	return func(s *Service) { s.freeTags = freeTags }
}

// WithRand replaces the generator used for initial note placement. intn must
// return a value in [0, n).
func WithRand(intn func(n int) int) Option {
	return func(s *Service) { s.intn = intn }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithBcryptCost(cost int) Option {
	return func(s *Service) { s.bcryptCost = cost }
}

func New(db *gorm.DB, opts ...Option) *Service {
	s := &Service{
		db:         db,
		bcryptCost: bcrypt.DefaultCost,
		intn:       rand.IntN,
		now:        time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.Wrap(err, "getting sql handle")
	}
	return errors.Wrap(sqlDB.PingContext(ctx), "pinging database")
}

// truncate limits s to limit runes so values fit their column size.
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
