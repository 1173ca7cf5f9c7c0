package main

import (
	"context"

	pressmark "github.com/pressmark/pressmark"
)

// MaxWorkers caps the --workers flag at the library pool limit.
const MaxWorkers = pressmark.MaxPoolSize

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input pressmark.Input) (*pressmark.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ Converter = (*pressmark.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() (Converter, error)
	Release(Converter)
	Size() int
}

// converterPool adapts pressmark.ConverterPool to the CLI Pool interface.
type converterPool struct {
	pool *pressmark.ConverterPool
}

// newConverterPool creates a pool sized for the worker count, with each
// converter sharing the given options.
func newConverterPool(workers int, opts ...pressmark.Option) *converterPool {
	size := pressmark.ResolvePoolSize(workers)
	return &converterPool{pool: pressmark.NewConverterPool(size, opts...)}
}

func (p *converterPool) Acquire() (Converter, error) {
	return p.pool.Acquire()
}

func (p *converterPool) Release(c Converter) {
	if conv, ok := c.(*pressmark.Converter); ok {
		p.pool.Release(conv)
	}
}

func (p *converterPool) Size() int {
	return p.pool.Size()
}

func (p *converterPool) Close() error {
	return p.pool.Close()
}
