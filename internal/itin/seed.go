//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package itin

import (
	"errors"
	"fmt"

	"github.com/Margento/BilingualCorpusJourney/internal/grph"
	"github.com/Margento/BilingualCorpusJourney/internal/lnch"
)

var Msg = lnch.NewMessageMakerWithDefaults()

var (
	ErrNoCrossEdges     = errors.New("no edge joins the two languages")
	ErrUnknownSeed      = errors.New("seed poem not found")
	ErrAmbiguousSeed    = errors.New("seed label matches more than one poem")
	ErrSeedSameLanguage = errors.New("seed poems share a language")
)

// Seed - the opening pair of the journey; the walk continues from V
type Seed struct {
	U int
	V int
}

// Endpoint - a poem named the way a user would name it
type Endpoint struct {
	Lang  string
	Label string
}

// AutoSeed - the heaviest cross edge; U is the lower id, so with language A numbered first the journey
// opens in language A and continues from language B
func AutoSeed(g *grph.Graph) (Seed, error) {
	ce := g.CrossEdges()
	if len(ce) == 0 {
		return Seed{}, ErrNoCrossEdges
	}
	return Seed{U: ce[0].U, V: ce[0].V}, nil
}

// SeedFromLabels - resolve two configured poems into a seed
func SeedFromLabels(g *grph.Graph, a, b Endpoint) (Seed, error) {
	u, err := find(g, a)
	if err != nil {
		return Seed{}, err
	}
	v, err := find(g, b)
	if err != nil {
		return Seed{}, err
	}
	s := Seed{U: u, V: v}
	return s, check(g, s)
}

func find(g *grph.Graph, ep Endpoint) (int, error) {
	id := -1
	for _, d := range g.Docs() {
		if d.Label != ep.Label || (ep.Lang != "" && d.Lang != ep.Lang) {
			continue
		}
		if id >= 0 {
			return 0, fmt.Errorf("'%s': %w", ep.Label, ErrAmbiguousSeed)
		}
		id = d.ID
	}
	if id < 0 {
		return 0, fmt.Errorf("'%s' [%s]: %w", ep.Label, ep.Lang, ErrUnknownSeed)
	}
	return id, nil
}

// check - both seed poems exist and they differ in language
func check(g *grph.Graph, s Seed) error {
	du, ok := g.Doc(s.U)
	if !ok {
		return fmt.Errorf("%d: %w", s.U, ErrUnknownSeed)
	}
	dv, ok := g.Doc(s.V)
	if !ok {
		return fmt.Errorf("%d: %w", s.V, ErrUnknownSeed)
	}
	if du.Lang == dv.Lang {
		return fmt.Errorf("'%s' and '%s': %w", du.Label, dv.Label, ErrSeedSameLanguage)
	}
	return nil
}
