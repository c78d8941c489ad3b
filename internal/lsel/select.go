//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lsel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Margento/BilingualCorpusJourney/internal/grph"
	"github.com/Margento/BilingualCorpusJourney/internal/itin"
	"github.com/Margento/BilingualCorpusJourney/internal/lnch"
	"github.com/Margento/BilingualCorpusJourney/internal/vec"
)

var Msg = lnch.NewMessageMakerWithDefaults()

var (
	ErrNoLines     = errors.New("poem has no lines")
	ErrNoResources = errors.New("no tokenizer or space for language")
)

// Pick - the line chosen to stand for a poem
type Pick struct {
	PoemID     int
	Label      string
	Lang       string
	Line       int // index into the poem's non-blank lines
	Text       string
	Similarity float64
}

// Resources - what one language needs to turn a line into a vector
type Resources struct {
	Tokenizer *vec.Tokenizer
	Space     vec.Lookuper
}

// Select - the line whose vector lies closest to the poem's own vector; the earliest line wins a tie
func Select(poem vec.Document, tok *vec.Tokenizer, space vec.Lookuper) (Pick, error) {
	if len(poem.Lines) == 0 {
		return Pick{}, fmt.Errorf("'%s': %w", poem.Label, ErrNoLines)
	}

	pv := poem.Vector
	if pv == nil {
		pv, _ = vec.Vectorize(poem.Tokens, space)
	}

	best := Pick{PoemID: poem.ID, Label: poem.Label, Lang: poem.Lang, Line: -1}
	for i, ln := range poem.Lines {
		lv, _ := vec.Vectorize(tok.Tokens(ln), space)
		sim := grph.Cosine(pv, lv)
		if best.Line < 0 || sim > best.Similarity {
			best.Line = i
			best.Text = ln
			best.Similarity = sim
		}
	}
	return best, nil
}

// SelectAll - one pick per stop, in journey order; poems without lines are reported and skipped
func SelectAll(it itin.Itinerary, g *grph.Graph, res map[string]Resources) ([]Pick, error) {
	const (
		WRN1 = "SelectAll(): skipping '%s'"
		MSG1 = "SelectAll(): %d lines picked from %d poems"
		MSG2 = "\t%-24s %.4f  %s"
	)

	picks := make([]Pick, 0, len(it.Stops))
	for _, st := range it.Stops {
		d, ok := g.Doc(st.ID)
		if !ok {
			return nil, fmt.Errorf("SelectAll(): unknown poem %d", st.ID)
		}
		r, ok := res[d.Lang]
		if !ok || r.Tokenizer == nil || r.Space == nil {
			return nil, fmt.Errorf("'%s': %w", d.Lang, ErrNoResources)
		}
		p, err := Select(d, r.Tokenizer, r.Space)
		if errors.Is(err, ErrNoLines) {
			Msg.WARN(fmt.Sprintf(WRN1, d.Label))
			continue
		}
		if err != nil {
			return nil, err
		}
		Msg.TMI(fmt.Sprintf(MSG2, p.Label, p.Similarity, p.Text))
		picks = append(picks, p)
	}
	Msg.PEEK(fmt.Sprintf(MSG1, len(picks), len(it.Stops)))
	return picks, nil
}

// Lines - the journey poem
func Lines(picks []Pick) []string {
	out := make([]string, len(picks))
	for i, p := range picks {
		out[i] = p.Text
	}
	return out
}

// Render - the journey poem as text, one line per pick
func Render(picks []Pick) string {
	if len(picks) == 0 {
		return ""
	}
	return strings.Join(Lines(picks), "\n") + "\n"
}
