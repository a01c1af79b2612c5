package main

import (
	"runtime"
	"sync"

	html2md "github.com/alnah/go-html2md"
)

// maxPoolSize caps the worker pool. Each renderJS service owns a browser
// instance, so unbounded pools would exhaust memory quickly.
const maxPoolSize = 32

// ServicePool manages html2md.Service instances for parallel processing.
// Services are created lazily on first acquire: a renderJS service launches
// its browser only when it first fetches, so idle capacity stays cheap.
type ServicePool struct {
	size     int
	create   func() (*html2md.Service, error)
	services []*html2md.Service
	sem      chan CLIConverter
	mu       sync.Mutex
	created  int
	closed   bool
}

// NewServicePool creates a pool with capacity for n service instances built
// by create. Services are created lazily when acquired, not at pool creation.
func NewServicePool(n int, create func() (*html2md.Service, error)) *ServicePool {
	if n < 1 {
		n = 1
	}

	return &ServicePool{
		size:     n,
		create:   create,
		services: make([]*html2md.Service, 0, n),
		sem:      make(chan CLIConverter, n),
	}
}

// Compile-time check that ServicePool implements Pool.
var _ Pool = (*ServicePool)(nil)

// Acquire gets a service from the pool, creating one if needed.
// Blocks if all services are in use. Returns nil if creation failed.
func (p *ServicePool) Acquire() CLIConverter {
	// Try to get an existing service (non-blocking)
	select {
	case svc := <-p.sem:
		return svc
	default:
	}

	// Check if we can create a new service
	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		// Create the new service outside the lock
		svc, err := p.create()
		if err != nil {
			p.mu.Lock()
			p.created--
			p.mu.Unlock()
			return nil
		}

		p.mu.Lock()
		p.services = append(p.services, svc)
		p.mu.Unlock()

		return svc
	}
	p.mu.Unlock()

	// All services created, wait for one to be released
	return <-p.sem
}

// Release returns a service to the pool.
func (p *ServicePool) Release(svc CLIConverter) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.closed {
		p.sem <- svc
	}
}

// Close releases all fetcher resources, including any launched browsers.
func (p *ServicePool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.sem)
	services := p.services
	p.mu.Unlock()

	var lastErr error
	for _, svc := range services {
		if err := svc.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// Size returns the pool capacity.
func (p *ServicePool) Size() int {
	return p.size
}

// resolvePoolSize determines the pool size.
// Priority: explicit worker count > GOMAXPROCS-based calculation.
func resolvePoolSize(workers int) int {
	// Explicit count takes priority
	if workers > 0 {
		return workers
	}

	// Auto-calculate from GOMAXPROCS (adjusted by automaxprocs in containers)
	available := runtime.GOMAXPROCS(0)
	n := available / 2

	// Minimum 1, maximum 8
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}
