//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

var (
	ErrCorpusDir = errors.New("corpus directory is not readable")
	ErrNoPoems   = errors.New("no poems matched")
)

// Document - one poem: its lines, its content tokens and, once vectorized, its vector
type Document struct {
	ID     int
	Label  string
	Lang   string
	Lines  []string
	Tokens []string
	Vector []float64
}

// CorpusSource - where one language's poems live
type CorpusSource struct {
	Dir     string
	Pattern string // doublestar pattern relative to Dir
	Lang    string
	Limit   int // 0: no cap
}

// ListFiles - the regular files under dir that match pattern, as slash-separated paths relative to dir, sorted
func ListFiles(dir string, pattern string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("'%s': %w", dir, ErrCorpusDir)
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("bad corpus pattern '%s'", pattern)
	}

	var found []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, e error) error {
		if e != nil {
			return e
		}
		if d.IsDir() {
			return nil
		}
		rel, e := filepath.Rel(dir, path)
		if e != nil {
			return e
		}
		rel = filepath.ToSlash(rel)
		if ok, _ := doublestar.Match(pattern, rel); ok {
			found = append(found, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", dir, err)
	}

	sort.Strings(found)
	return found, nil
}

// LoadCorpus - one Document per file; ids run from firstID in file name order
func LoadCorpus(src CorpusSource, firstID int, tok *Tokenizer) ([]Document, error) {
	const (
		MSG1 = "LoadCorpus(): %d %s poems read from %s"
		MSG2 = "LoadCorpus(): %s capped at %d of %d poems"
		WRN1 = "LoadCorpus(): '%s' has no lines"
	)

	files, err := ListFiles(src.Dir, src.Pattern)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("'%s' + '%s': %w", src.Dir, src.Pattern, ErrNoPoems)
	}
	if src.Limit > 0 && len(files) > src.Limit {
		Msg.PEEK(fmt.Sprintf(MSG2, src.Lang, src.Limit, len(files)))
		files = files[:src.Limit]
	}

	docs := make([]Document, 0, len(files))
	for i, f := range files {
		raw, e := os.ReadFile(filepath.Join(src.Dir, filepath.FromSlash(f)))
		if e != nil {
			return nil, e
		}
		d := NewDocument(firstID+i, f, src.Lang, string(raw), tok)
		if len(d.Lines) == 0 {
			Msg.WARN(fmt.Sprintf(WRN1, f))
		}
		docs = append(docs, d)
	}

	Msg.FYI(fmt.Sprintf(MSG1, len(docs), src.Lang, src.Dir))
	return docs, nil
}

// NewDocument - split text into its non-blank lines and collect the content tokens of every line
func NewDocument(id int, label string, lang string, text string, tok *Tokenizer) Document {
	// undecodable bytes are dropped rather than refused
	text = strings.ToValidUTF8(text, "")

	d := Document{ID: id, Label: label, Lang: lang}
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		d.Lines = append(d.Lines, l)
		d.Tokens = append(d.Tokens, tok.Tokens(l)...)
	}
	return d
}
