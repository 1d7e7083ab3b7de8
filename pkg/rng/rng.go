package rng

import (
	"math/rand/v2"
	"sync"
)

// Source Источник случайных чисел для игровой логики
type Source interface {
	IntN(n int) int
	Float64() float64
}

type global struct{}

// Global источник на общем генераторе math/rand/v2, безопасен для горутин
func Global() Source {
	return global{}
}

func (global) IntN(n int) int {
	return rand.IntN(n)
}

func (global) Float64() float64 {
	return rand.Float64()
}

type seeded struct {
	mtx sync.Mutex
	r   *rand.Rand
}

// Seeded детерминированный источник (симуляции и тесты)
func Seeded(seed uint64) Source {
	return &seeded{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seeded) IntN(n int) int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.r.IntN(n)
}

func (s *seeded) Float64() float64 {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.r.Float64()
}
