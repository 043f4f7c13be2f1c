package catalog

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sort"

	"reviewboard/internal/domain"
)

var ErrUnknownCatalog = errors.New("catalog: unknown catalog")

// Source is a fixed, ordered list of reviews. It is never mutated after
// construction; List hands out copies.
type Source struct {
	name    string
	banner  string // startup notice, %s is the port
	reviews []domain.Review
}

var (
	Backend = &Source{
		name:   "backend",
		banner: "listening for requests on port %s",
		reviews: []domain.Review{
			{ID: "1", Title: "Movie Review: The Perk of Being a Wallflower"},
			{ID: "2", Title: "Game Review: Need for Speed"},
			{ID: "3", Title: "Show Review: Looking for Alaska"},
		},
	}

	Node = &Source{
		name:   "node",
		banner: "connected on port %s",
		reviews: []domain.Review{
			{ID: "1", Title: "Album Review: When we all Fall asleep where do we go?"},
			{ID: "2", Title: "Book Review: How can we escape this labyrnith of suffering?"},
			{ID: "3", Title: "Documentary Review: How can we escape the rat race?"},
		},
	}
)

var byName = map[string]*Source{
	Backend.name: Backend,
	Node.name:    Node,
}

// Lookup resolves a catalog by name ("backend" or "node").
func Lookup(name string) (*Source, error) {
	s, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %v)", ErrUnknownCatalog, name, Names())
	}
	return s, nil
}

func Names() []string {
	out := make([]string, 0, len(byName))
	for n := range byName {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func (s *Source) Name() string { return s.name }

// List returns the reviews in declaration order.
func (s *Source) List(_ context.Context) ([]domain.Review, error) {
	out := make([]domain.Review, len(s.reviews))
	copy(out, s.reviews)
	return out, nil
}

// Banner is the human-readable startup line for a server bound to addr.
func (s *Source) Banner(addr string) string {
	port := addr
	if _, p, err := net.SplitHostPort(addr); err == nil {
		port = p
	}
	return fmt.Sprintf(s.banner, port)
}
