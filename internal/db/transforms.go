//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"bytes"
	"compress/gzip"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Margento/BilingualCorpusJourney/internal/lnch"
	"gonum.org/v1/gonum/mat"
	_ "modernc.org/sqlite"
)

var Msg = lnch.NewMessageMakerWithDefaults()

const (
	TRANSFORMTABLE = "transforms"
	DRIVER         = "sqlite"
)

// TransformCache - learned alignment matrices keyed by the fingerprint of their training data
type TransformCache struct {
	path string
	sdb  *sql.DB
}

// OpenTransformCache - open (and if need be create) the SQLite file at path; ":memory:" works too
func OpenTransformCache(path string) (*TransformCache, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, err
		}
	}

	sdb, err := sql.Open(DRIVER, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	// a single connection keeps ":memory:" a single database
	sdb.SetMaxOpenConns(1)

	c := &TransformCache{path: path, sdb: sdb}
	if err = c.init(); err != nil {
		_ = sdb.Close()
		return nil, err
	}
	return c, nil
}

func (c *TransformCache) init() error {
	const (
		CREATE = `
			CREATE TABLE %s
			(
			  fingerprint character(32) PRIMARY KEY,
			  rows        int,
			  cols        int,
			  datasize    int,
			  data        blob
			)`
		EXISTS = "already exists"
	)
	_, err := c.sdb.ExecContext(context.Background(), fmt.Sprintf(CREATE, TRANSFORMTABLE))
	if err != nil {
		if !strings.Contains(err.Error(), EXISTS) {
			return fmt.Errorf("%s: %w", c.path, err)
		}
	} else {
		Msg.TMI(fmt.Sprintf("created table '%s' in %s", TRANSFORMTABLE, c.path))
	}
	return nil
}

// Check - has a transform with this fingerprint already been stored?
func (c *TransformCache) Check(fp string) bool {
	const (
		Q = `SELECT fingerprint FROM %s WHERE fingerprint = ? LIMIT 1`
		F = `TransformCache.Check() found %s`
	)
	var found string
	err := c.sdb.QueryRowContext(context.Background(), fmt.Sprintf(Q, TRANSFORMTABLE), fp).Scan(&found)
	if err != nil {
		// sql.ErrNoRows if you did not find the fingerprint
		return false
	}
	Msg.TMI(fmt.Sprintf(F, found))
	return true
}

// Add - store a transform; an existing entry for fp is replaced
func (c *TransformCache) Add(fp string, t *mat.Dense) error {
	const (
		MSG1 = "TransformCache.Add(): %s (%d bytes)"
		INS  = `INSERT OR REPLACE INTO %s (fingerprint, rows, cols, datasize, data) VALUES (?, ?, ?, ?, ?)`
		GZ   = gzip.BestSpeed
	)

	raw, err := t.MarshalBinary()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, GZ)
	if err != nil {
		return err
	}
	if _, err = zw.Write(raw); err != nil {
		return err
	}
	if err = zw.Close(); err != nil {
		return err
	}

	b := buf.Bytes()
	r, cc := t.Dims()
	_, err = c.sdb.ExecContext(context.Background(), fmt.Sprintf(INS, TRANSFORMTABLE), fp, r, cc, len(b), b)
	if err != nil {
		return fmt.Errorf("%s: %w", c.path, err)
	}
	Msg.TMI(fmt.Sprintf(MSG1, fp, len(b)))
	return nil
}

// Fetch - the stored transform for fp; ok is false when there is none
func (c *TransformCache) Fetch(fp string) (*mat.Dense, bool, error) {
	const (
		Q = `SELECT data FROM %s WHERE fingerprint = ? LIMIT 1`
	)

	var data []byte
	err := c.sdb.QueryRowContext(context.Background(), fmt.Sprintf(Q, TRANSFORMTABLE), fp).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", c.path, err)
	}

	// the data in the table is zipped and needs unzipping
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("%s: %s: %w", c.path, fp, err)
	}
	decompr, err := io.ReadAll(zr)
	_ = zr.Close()
	if err != nil {
		return nil, false, fmt.Errorf("%s: %s: %w", c.path, fp, err)
	}

	var t mat.Dense
	if err = t.UnmarshalBinary(decompr); err != nil {
		return nil, false, fmt.Errorf("%s: %s: %w", c.path, fp, err)
	}
	return &t, true, nil
}

// Count - how many transforms are stored
func (c *TransformCache) Count() (int, error) {
	const (
		Q = `SELECT COUNT(*) FROM %s`
	)
	var n int
	err := c.sdb.QueryRowContext(context.Background(), fmt.Sprintf(Q, TRANSFORMTABLE)).Scan(&n)
	return n, err
}

// Reset - drop every stored transform
func (c *TransformCache) Reset() error {
	const (
		E = `DELETE FROM %s`
	)
	_, err := c.sdb.ExecContext(context.Background(), fmt.Sprintf(E, TRANSFORMTABLE))
	if err == nil {
		Msg.PEEK(fmt.Sprintf("TransformCache.Reset() emptied %s", c.path))
	}
	return err
}

func (c *TransformCache) Close() error {
	return c.sdb.Close()
}
