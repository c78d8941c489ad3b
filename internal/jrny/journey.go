//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package jrny

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Margento/BilingualCorpusJourney/internal/algn"
	"github.com/Margento/BilingualCorpusJourney/internal/base/mm"
	"github.com/Margento/BilingualCorpusJourney/internal/base/str"
	"github.com/Margento/BilingualCorpusJourney/internal/db"
	"github.com/Margento/BilingualCorpusJourney/internal/emb"
	"github.com/Margento/BilingualCorpusJourney/internal/grph"
	"github.com/Margento/BilingualCorpusJourney/internal/itin"
	"github.com/Margento/BilingualCorpusJourney/internal/lnch"
	"github.com/Margento/BilingualCorpusJourney/internal/lsel"
	"github.com/Margento/BilingualCorpusJourney/internal/vec"
	"github.com/google/uuid"
)

var Msg = lnch.NewMessageMakerWithDefaults()

var ErrSameLanguage = errors.New("both sides of the corpus carry the same language tag")

// Result - everything a run produced
type Result struct {
	RunID       string
	Alignment   algn.Result
	Graph       *grph.Graph
	Seed        itin.Seed
	Itinerary   itin.Itinerary
	Picks       []lsel.Pick
	Poem        string
	Translation *Translation // only in translation mode
}

// side - one language's space, tokenizer and poems
type side struct {
	conf  str.LanguageConf
	space *emb.Space
	tok   *vec.Tokenizer
	docs  []vec.Document
}

// Run - the whole journey: align, vectorize, graph, walk, select, write
func Run(cfg str.CurrentConfiguration) (*Result, error) {
	const (
		MSG0 = "run %s: %s → %s"
		MSG1 = "%s and %s spaces loaded"
		MSG2 = "%s aligned into %s"
		MSG3 = "%d + %d poems vectorized"
		MSG4 = "similarity graph built"
		MSG5 = "itinerary walked"
		MSG6 = "lines selected"
		MSG7 = "journey written"
		MSG8 = "opening pair: '%s' → '%s' (%.4f)"
	)

	tune(cfg)

	if cfg.LangA.Tag == cfg.LangB.Tag {
		return nil, fmt.Errorf("'%s': %w", cfg.LangA.Tag, ErrSameLanguage)
	}

	res := &Result{RunID: uuid.New().String()}
	Msg.FYI(fmt.Sprintf(MSG0, res.RunID, cfg.LangA.Name, cfg.LangB.Name))

	start := time.Now()
	previous := time.Now()

	a := &side{conf: cfg.LangA}
	b := &side{conf: cfg.LangB}
	if err := loadspaces(a, b); err != nil {
		return nil, err
	}
	Msg.Timer("J1", fmt.Sprintf(MSG1, a.conf.Name, b.conf.Name), start, previous)

	previous = time.Now()
	al, err := align(cfg, a.space, b.space)
	if err != nil {
		return nil, err
	}
	res.Alignment = al
	Msg.Timer("J2", fmt.Sprintf(MSG2, b.conf.Name, a.conf.Name), start, previous)

	if cfg.ExportAligned != "" {
		if err = exportaligned(b.space, cfg.ExportAligned); err != nil {
			return nil, err
		}
	}

	if cfg.Translate != "" {
		tr, e := translate(cfg, cfg.Translate, a.space, b.space)
		if e != nil {
			return nil, e
		}
		res.Translation = &tr
		return res, nil
	}

	previous = time.Now()
	a.tok = vec.NewTokenizer(a.conf.Tag, vec.ReadStopConfig(a.conf.Tag, cfg.StopsDir))
	b.tok = vec.NewTokenizer(b.conf.Tag, vec.ReadStopConfig(b.conf.Tag, cfg.StopsDir))

	// language A is numbered first
	if a.docs, err = loadside(a, 0, cfg); err != nil {
		return nil, err
	}
	if b.docs, err = loadside(b, len(a.docs), cfg); err != nil {
		return nil, err
	}
	Msg.Timer("J3", fmt.Sprintf(MSG3, len(a.docs), len(b.docs)), start, previous)

	previous = time.Now()
	all := append(append([]vec.Document{}, a.docs...), b.docs...)
	res.Graph = grph.Build(all, cfg.WorkerCount, cfg.ProgressBar)
	Msg.Timer("J4", MSG4, start, previous)

	if Msg.LLvl >= mm.MSGFYI {
		reportrankings(res.Graph, cfg.RankTop)
	}

	previous = time.Now()
	if res.Seed, err = seed(cfg, res.Graph); err != nil {
		return nil, err
	}
	du, _ := res.Graph.Doc(res.Seed.U)
	dv, _ := res.Graph.Doc(res.Seed.V)
	Msg.NOTE(fmt.Sprintf(MSG8, du.Label, dv.Label, res.Graph.Weight(res.Seed.U, res.Seed.V)))

	w := itin.Walker{Floor: cfg.WalkFloor, Budget: cfg.BacktrackBudget}
	if cfg.Backtrack {
		res.Itinerary, err = w.WalkBacktracking(res.Graph, res.Seed)
	} else {
		res.Itinerary, err = w.Walk(res.Graph, res.Seed)
	}
	if err != nil {
		return nil, err
	}
	reportitinerary(res.Itinerary, res.Graph.Len())
	Msg.Timer("J5", MSG5, start, previous)

	previous = time.Now()
	resources := map[string]lsel.Resources{
		a.conf.Tag: {Tokenizer: a.tok, Space: a.space},
		b.conf.Tag: {Tokenizer: b.tok, Space: b.space},
	}
	if res.Picks, err = lsel.SelectAll(res.Itinerary, res.Graph, resources); err != nil {
		return nil, err
	}
	res.Poem = lsel.Render(res.Picks)
	Msg.Timer("J6", MSG6, start, previous)

	previous = time.Now()
	if err = writejourney(cfg, res); err != nil {
		return nil, err
	}
	Msg.Timer("J7", MSG7, start, previous)

	return res, nil
}

// tune - every package logs at the configured level
func tune(cfg str.CurrentConfiguration) {
	for _, m := range []*mm.MessageMaker{Msg, algn.Msg, db.Msg, emb.Msg, grph.Msg, itin.Msg, lsel.Msg, vec.Msg} {
		lnch.ConfigureMessageMaker(m, cfg)
	}
}

// loadspaces - the two vector files are independent: read them side by side
func loadspaces(a, b *side) error {
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, s := range []*side{a, b} {
		wg.Add(1)
		go func(i int, s *side) {
			defer wg.Done()
			sp, err := emb.Load(s.conf.Vectors)
			if err != nil {
				errs[i] = err
				return
			}
			sp.Name = s.conf.Tag
			s.space = sp
		}(i, s)
	}
	wg.Wait()
	return errors.Join(errs...)
}

// align - learn (or recall) the transform carrying B into A and apply it to B
func align(cfg str.CurrentConfiguration, a, b *emb.Space) (algn.Result, error) {
	const (
		WRN1 = "align(): transform cache unavailable (%s); learning without it"
		MSG1 = "align(): %d pairs read from %s"
	)

	var pairs []algn.Pair
	if cfg.PairsFile != "" {
		p, err := algn.ReadPairs(cfg.PairsFile)
		if err != nil {
			return algn.Result{}, err
		}
		Msg.PEEK(fmt.Sprintf(MSG1, len(p), cfg.PairsFile))
		pairs = p
	} else {
		pairs = algn.OverlapPairs(b, a)
	}

	al := algn.Aligner{Normalize: cfg.NormalizeTraining}
	if !cfg.NoCache && cfg.TransformCache != "" {
		tc, err := db.OpenTransformCache(cfg.TransformCache)
		if err != nil {
			Msg.WARN(fmt.Sprintf(WRN1, err.Error()))
		} else {
			defer func() { _ = tc.Close() }()
			al.Store = tc
		}
	}
	return al.Align(b, a, pairs)
}

// loadside - read and vectorize one language's poems
func loadside(s *side, first int, cfg str.CurrentConfiguration) ([]vec.Document, error) {
	src := vec.CorpusSource{
		Dir:     s.conf.Corpus,
		Pattern: s.conf.Pattern,
		Lang:    s.conf.Tag,
		Limit:   s.conf.MaxPoems,
	}
	docs, err := vec.LoadCorpus(src, first, s.tok)
	if err != nil {
		return nil, err
	}
	return vec.VectorizeCorpus(docs, s.space, cfg.WorkerCount, cfg.ProgressBar), nil
}

// seed - the configured opening pair if there is one, else the heaviest cross edge
func seed(cfg str.CurrentConfiguration, g *grph.Graph) (itin.Seed, error) {
	const (
		WRN1 = "seed(): only one of the two seed poems was configured; using the heaviest cross edge"
	)
	switch {
	case cfg.SeedA != "" && cfg.SeedB != "":
		return itin.SeedFromLabels(g,
			itin.Endpoint{Lang: cfg.LangA.Tag, Label: cfg.SeedA},
			itin.Endpoint{Lang: cfg.LangB.Tag, Label: cfg.SeedB})
	case cfg.SeedA != "" || cfg.SeedB != "":
		Msg.WARN(WRN1)
	}
	return itin.AutoSeed(g)
}
