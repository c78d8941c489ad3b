//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package algn

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/Margento/BilingualCorpusJourney/internal/base/gen"
	"github.com/Margento/BilingualCorpusJourney/internal/emb"
	"github.com/Margento/BilingualCorpusJourney/internal/lnch"
)

var Msg = lnch.NewMessageMakerWithDefaults()

// Pair - a source-language token and its target-language counterpart
type Pair struct {
	Source string
	Target string
}

// OverlapPairs - every token spelled the same way in both vocabularies, paired with itself
func OverlapPairs(source, target *emb.Space) []Pair {
	shared := gen.Intersection(source.Words(), target.Words())
	pp := make([]Pair, len(shared))
	for i, w := range shared {
		pp[i] = Pair{Source: w, Target: w}
	}
	Msg.PEEK(fmt.Sprintf("OverlapPairs(): %s tokens shared by %s and %s", gen.PrettyInt(len(pp)), source.Name, target.Name))
	return pp
}

// ReadPairs - a dictionary file with one "source target" pair per line
func ReadPairs(path string) ([]Pair, error) {
	const (
		WRN = "ReadPairs(): %s line %d skipped: expected two tokens, found %d"
	)

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var pp []Pair
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		ff := strings.Fields(sc.Text())
		if len(ff) == 0 {
			continue
		}
		if len(ff) != 2 {
			Msg.WARN(fmt.Sprintf(WRN, path, line, len(ff)))
			continue
		}
		pp = append(pp, Pair{Source: ff[0], Target: ff[1]})
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pp, nil
}
