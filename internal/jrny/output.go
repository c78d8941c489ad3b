//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package jrny

import (
	"fmt"
	"os"
	"strings"

	"github.com/Margento/BilingualCorpusJourney/internal/base/gen"
	"github.com/Margento/BilingualCorpusJourney/internal/base/str"
	"github.com/Margento/BilingualCorpusJourney/internal/emb"
	"github.com/Margento/BilingualCorpusJourney/internal/grph"
	"github.com/Margento/BilingualCorpusJourney/internal/itin"
	"github.com/Margento/BilingualCorpusJourney/internal/vv"
)

// writejourney - the poem to stdout and, if asked, to a file; the chart if asked
func writejourney(cfg str.CurrentConfiguration, res *Result) error {
	const (
		MSG1 = "journey written to '%s'"
		MSG2 = "itinerary graph written to '%s'"
		SUBT = "%d poems; %s"
	)

	fmt.Print(res.Poem)

	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, []byte(res.Poem), vv.WRITEPERMS); err != nil {
			return fmt.Errorf("'%s': %w", cfg.Output, err)
		}
		Msg.NOTE(fmt.Sprintf(MSG1, cfg.Output))
	}

	if cfg.GraphHTML != "" {
		f, err := os.Create(cfg.GraphHTML)
		if err != nil {
			return fmt.Errorf("'%s': %w", cfg.GraphHTML, err)
		}
		o := grph.RenderOptions{
			Title:    fmt.Sprintf("%s: %s → %s", vv.MYNAME, cfg.LangA.Name, cfg.LangB.Name),
			Subtitle: fmt.Sprintf(SUBT, len(res.Itinerary.Stops), res.RunID),
			Width:    cfg.GraphWidth,
			Height:   cfg.GraphHeight,
			PCA:      cfg.GraphPCA,
		}
		err = grph.RenderItinerary(f, res.Graph, res.Itinerary.IDs(), o)
		if ce := f.Close(); err == nil {
			err = ce
		}
		if err != nil {
			return fmt.Errorf("'%s': %w", cfg.GraphHTML, err)
		}
		Msg.NOTE(fmt.Sprintf(MSG2, cfg.GraphHTML))
	}
	return nil
}

func exportaligned(s *emb.Space, fn string) error {
	const (
		MSG1 = "aligned %s space exported to '%s'"
	)
	if err := s.Export(fn); err != nil {
		return fmt.Errorf("'%s': %w", fn, err)
	}
	Msg.NOTE(fmt.Sprintf(MSG1, s.Name, fn))
	return nil
}

// reportrankings - descriptive statistics only; nothing downstream consumes them
func reportrankings(g *grph.Graph, top int) {
	const (
		HEAD = "top %d by %s:"
		LINE = "\t%2d. %-32s %s"
	)

	show := func(what string, rr []grph.Rank) {
		rr = grph.TopRanks(rr, top)
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf(HEAD, len(rr), what))
		for i, r := range rr {
			sb.WriteString("\n")
			sb.WriteString(fmt.Sprintf(LINE, i+1, r.Label, gen.PrettyFloat(r.Value, 4)))
		}
		Msg.FYI(sb.String())
	}

	edges := g.CrossEdges()
	if len(edges) > top {
		edges = edges[:top]
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(HEAD, len(edges), "cross-language similarity"))
	for i, e := range edges {
		du, _ := g.Doc(e.U)
		dv, _ := g.Doc(e.V)
		sb.WriteString(fmt.Sprintf("\n\t%2d. %s ↔ %s %s", i+1, du.Label, dv.Label, gen.PrettyFloat(e.Weight, 4)))
	}
	Msg.FYI(sb.String())

	show("weighted degree", g.Degrees())
	show("closeness", g.Closeness(false))
	show("weighted closeness", g.Closeness(true))
	show("weighted betweenness", g.Betweenness(true))
	show("eigenvector centrality", g.Eigenvector())
}

func reportitinerary(it itin.Itinerary, n int) {
	const (
		MSG1 = "itinerary: %d of %d poems"
		MSG2 = "itinerary stalled: %d poem(s) never reached"
		LINE = "\t%3d. [%s] %-32s %.4f"
	)
	if it.Stalled {
		Msg.WARN(fmt.Sprintf(MSG2, len(it.Unvisited)))
	}
	Msg.NOTE(fmt.Sprintf(MSG1, len(it.Stops), n))
	for i, s := range it.Stops {
		Msg.PEEK(fmt.Sprintf(LINE, i+1, s.Lang, s.Label, s.Weight))
	}
}
