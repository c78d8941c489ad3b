//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package emb

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Margento/BilingualCorpusJourney/internal/vv"
)

// Export - write the space back out in the format Load() reads; transforming a large space is expensive, so keep the result
func (s *Space) Export(path string) error {
	const (
		MSG = "wrote %d vectors to %s"
	)
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	_, err = s.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	Msg.PEEK(fmt.Sprintf(MSG, s.Len(), path))
	return nil
}

// WriteTo - header plus one row per token in insertion order; values fixed at six decimals
func (s *Space) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriterSize(w, 1<<20)
	cw := &countingwriter{w: bw}

	n, d := s.embed.Dims()
	if _, err := fmt.Fprintf(cw, "%d %d\n", n, d); err != nil {
		return cw.n, err
	}

	buf := make([]byte, 0, 16*d+64)
	for i := 0; i < n; i++ {
		buf = buf[:0]
		buf = append(buf, s.words[i]...)
		for _, v := range s.embed.RawRowView(i) {
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, v, 'f', vv.EXPORTPRECISION, 64)
		}
		buf = append(buf, '\n')
		if _, err := cw.Write(buf); err != nil {
			return cw.n, err
		}
	}

	return cw.n, bw.Flush()
}

type countingwriter struct {
	w io.Writer
	n int64
}

func (c *countingwriter) Write(p []byte) (int, error) {
	k, err := c.w.Write(p)
	c.n += int64(k)
	return k, err
}
