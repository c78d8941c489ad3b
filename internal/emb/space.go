//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package emb

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Margento/BilingualCorpusJourney/internal/base/gen"
	"github.com/Margento/BilingualCorpusJourney/internal/lnch"
	"github.com/e-gun/wego/pkg/embedding"
	"github.com/e-gun/wego/pkg/search"
	"gonum.org/v1/gonum/mat"
)

var (
	Msg = lnch.NewMessageMakerWithDefaults()

	ErrFormat      = errors.New("malformed vector file")
	ErrKeyNotFound = errors.New("token not in vocabulary")
	ErrEmpty       = errors.New("empty embedding space")
)

const (
	ROWCHUNK = 4096 // rows handed to the wego parser at a time
)

// FormatError - where and why a vector file could not be read
type FormatError struct {
	Path   string
	Line   int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s line %d: %s", e.Path, e.Line, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// Space - a word embedding space: token -> row of an n x d matrix
type Space struct {
	Name  string
	words []string       // insertion order; export order
	index map[string]int // first row for each token
	embed *mat.Dense

	// inverted softmax denominators from the previous call; see TranslateInvertedSoftmax()
	denominators []float64
	searcher     *search.Searcher
}

// NewSpace - build a Space from parallel slices of tokens and rows
func NewSpace(name string, words []string, rows [][]float64) (*Space, error) {
	if len(words) != len(rows) {
		return nil, fmt.Errorf("%s: %d tokens but %d rows", name, len(words), len(rows))
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmpty)
	}
	d := len(rows[0])
	m := mat.NewDense(len(rows), d, nil)
	for i, r := range rows {
		if len(r) != d {
			return nil, fmt.Errorf("%s: row %d has %d values, expected %d", name, i, len(r), d)
		}
		m.SetRow(i, r)
	}
	s := &Space{Name: name, embed: m}
	s.setwords(words)
	return s, nil
}

// Load - read a vector file: a "vocabulary_size dimension" header and then one "token v1 ... vd" row per line
func Load(path string) (*Space, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return ReadFrom(f, path)
}

// ReadFrom - Load() for an io.Reader; name is used in messages and errors
func ReadFrom(r io.Reader, name string) (*Space, error) {
	const (
		MSG1 = "reading word vectors from %s"
		MSG2 = "%s: %s tokens of dimension %d"
		WRN1 = "%s: %d duplicate token(s); lookups use the first row"
	)

	Msg.PEEK(fmt.Sprintf(MSG1, name))

	br := bufio.NewReaderSize(r, 1<<20)

	header, err := br.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && header != "") {
		return nil, &FormatError{Path: name, Line: 1, Reason: "missing header"}
	}

	n, d, err := parseheader(header)
	if err != nil {
		return nil, &FormatError{Path: name, Line: 1, Reason: err.Error()}
	}

	words := make([]string, 0, n)
	data := make([]float64, 0, n*d)

	var chunk strings.Builder
	var chunkstart, chunkrows int

	flush := func() error {
		if chunkrows == 0 {
			return nil
		}
		embs, e := embedding.Load(strings.NewReader(chunk.String()))
		if e != nil || len(embs) != chunkrows {
			return locatebadrow(name, chunk.String(), chunkstart)
		}
		for _, em := range embs {
			data = append(data, em.Vector...)
		}
		chunk.Reset()
		chunkrows = 0
		return nil
	}

	line := 1
	for {
		raw, rerr := br.ReadString('\n')
		if raw == "" && rerr != nil {
			if errors.Is(rerr, io.EOF) {
				break
			}
			return nil, rerr
		}
		line++

		raw = strings.TrimRight(raw, "\r\n")
		if strings.TrimSpace(raw) == "" {
			continue
		}

		fields := strings.Split(strings.TrimRight(raw, " "), " ")
		if len(fields)-1 != d {
			return nil, &FormatError{Path: name, Line: line,
				Reason: fmt.Sprintf("expected %d values after the token, found %d", d, len(fields)-1)}
		}
		if len(words) == n {
			return nil, &FormatError{Path: name, Line: line,
				Reason: fmt.Sprintf("more rows than the %d promised by the header", n)}
		}

		words = append(words, fields[0])

		// wego reads the values; the token is ours since it may hold characters wego would split on
		if chunkrows == 0 {
			chunkstart = line
		}
		chunk.WriteString("w ")
		chunk.WriteString(strings.Join(fields[1:], " "))
		chunk.WriteByte('\n')
		chunkrows++

		if chunkrows == ROWCHUNK {
			if e := flush(); e != nil {
				return nil, e
			}
		}

		if rerr != nil {
			break
		}
	}

	if e := flush(); e != nil {
		return nil, e
	}

	if len(words) != n {
		return nil, &FormatError{Path: name, Line: line,
			Reason: fmt.Sprintf("header promised %d rows, found %d", n, len(words))}
	}
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmpty)
	}

	s := &Space{Name: name, embed: mat.NewDense(n, d, data)}
	if dupes := s.setwords(words); dupes > 0 {
		Msg.WARN(fmt.Sprintf(WRN1, name, dupes))
	}

	Msg.FYI(fmt.Sprintf(MSG2, name, gen.PrettyInt(n), d))
	return s, nil
}

func parseheader(h string) (int, int, error) {
	hh := strings.Fields(h)
	if len(hh) != 2 {
		return 0, 0, fmt.Errorf("header should be 'vocabulary_size dimension', found %q", strings.TrimSpace(h))
	}
	n, e1 := strconv.Atoi(hh[0])
	d, e2 := strconv.Atoi(hh[1])
	if e1 != nil || e2 != nil || n < 0 || d < 1 {
		return 0, 0, fmt.Errorf("header values are not usable sizes: %q", strings.TrimSpace(h))
	}
	return n, d, nil
}

// locatebadrow - the chunk failed; find the first row wego rejects so the error can name it
func locatebadrow(name string, chunk string, first int) error {
	rows := strings.Split(strings.TrimRight(chunk, "\n"), "\n")
	for i, r := range rows {
		if _, e := embedding.Load(strings.NewReader(r)); e != nil {
			return &FormatError{Path: name, Line: first + i, Reason: "non-numeric vector value"}
		}
	}
	return &FormatError{Path: name, Line: first, Reason: "unreadable rows"}
}

func (s *Space) setwords(words []string) int {
	s.words = words
	s.index = make(map[string]int, len(words))
	dupes := 0
	for i, w := range words {
		if _, ok := s.index[w]; ok {
			dupes++
			continue
		}
		s.index[w] = i
	}
	return dupes
}

// Len - rows in the space
func (s *Space) Len() int {
	r, _ := s.embed.Dims()
	return r
}

// Dim - the fixed vector dimension
func (s *Space) Dim() int {
	_, c := s.embed.Dims()
	return c
}

// Words - tokens in insertion order
func (s *Space) Words() []string {
	return s.words
}

// Matrix - the n x d embedding matrix; callers must not modify it
func (s *Space) Matrix() *mat.Dense {
	return s.embed
}

func (s *Space) Contains(token string) bool {
	_, ok := s.index[token]
	return ok
}

// Lookup - a copy of the row for token
func (s *Space) Lookup(token string) ([]float64, error) {
	i, ok := s.index[token]
	if !ok {
		return nil, fmt.Errorf("%s: %q: %w", s.Name, token, ErrKeyNotFound)
	}
	return mat.Row(nil, i, s.embed), nil
}

// Row - the row at i without copying; only valid until the space is transformed
func (s *Space) Row(i int) []float64 {
	return s.embed.RawRowView(i)
}

// ApplyTransform - right-multiply the embeddings: E = E * T
func (s *Space) ApplyTransform(t mat.Matrix) error {
	_, d := s.embed.Dims()
	tr, tc := t.Dims()
	if tr != d || tc != d {
		return fmt.Errorf("%s: transform is %dx%d but the space has dimension %d", s.Name, tr, tc, d)
	}
	var out mat.Dense
	out.Mul(s.embed, t)
	s.embed = &out

	// anything derived from the old rows is now stale
	s.denominators = nil
	s.searcher = nil
	return nil
}
