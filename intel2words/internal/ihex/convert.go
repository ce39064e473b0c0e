// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ihex

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

const maxLineLen = 1 << 20

// RecordError describes a record that cannot be converted.
type RecordError struct {
	Line int    // line number, starting from 1
	Text string // trimmed line
	Err  error
}

func (e *RecordError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *RecordError) Unwrap() error { return e.Err }

// Converter converts Intel HEX records to instruction words.
type Converter struct {
	// Log receives the debug trace of the conversion: one entry for every
	// record and the final list of words. Nil disables tracing.
	Log logrus.FieldLogger
}

// Convert reads Intel HEX records from r and returns the words of all data
// records in the order they appear in r. Empty lines are traced as records
// with all fields empty and otherwise skipped. Lines longer than maxLineLen
// are reported as bufio.ErrTooLong.
func (c *Converter) Convert(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, maxLineLen)
	n := 1
	for ; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			c.traceRecord(Record{})
			continue
		}
		rec, err := ParseRecord(line)
		if err != nil {
			return nil, &RecordError{n, line, err}
		}
		c.traceRecord(rec)
		w, err := rec.Words()
		if err != nil {
			return nil, &RecordError{n, line, err}
		}
		words = append(words, w...)
	}
	if err := sc.Err(); err != nil {
		return nil, &RecordError{Line: n, Err: err}
	}
	if c.Log != nil {
		c.Log.WithField("words", words).Debug("instructions")
	}
	return words, nil
}

func (c *Converter) traceRecord(rec Record) {
	if c.Log == nil {
		return
	}
	c.Log.WithFields(logrus.Fields{
		"line":       rec.Line,
		"byte_count": rec.ByteCount,
		"address":    rec.Address,
		"type":       rec.Type,
		"data":       rec.Data,
		"checksum":   rec.Checksum,
	}).Debug("record")
}

// Emit writes words to w, one word per line.
func Emit(w io.Writer, words []string) error {
	bw := bufio.NewWriter(w)
	for _, word := range words {
		bw.WriteString(word)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// ConvertFile converts the Intel HEX file in and writes the resulting words to
// the out file. The out file is created (or truncated) only after the whole
// input has been successfully converted.
func ConvertFile(c *Converter, in, out string) error {
	words, err := readFile(c, in)
	if err != nil {
		return err
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err = Emit(f, words); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", out, err)
	}
	return f.Close()
}

func readFile(c *Converter, name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	words, err := c.Convert(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return words, nil
}
