// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ihex converts Intel HEX records to a list of byte swapped 16-bit
// words.
//
// The record fields are cut at fixed character offsets. Apart from the minimal
// length needed to locate the type and checksum fields nothing is validated:
// neither the hex digits, nor the byte count, nor the checksum.
package ihex

import (
	"errors"
	"strings"
)

// StartCode is the character that starts every record. It is removed from
// the whole line, not only from its beginning.
const StartCode = ":"

// TypeData is the record type of the data records. Records of any other type
// are ignored.
const TypeData = "00"

// WordLen is the number of hex characters in the one instruction word.
const WordLen = 4

const (
	typeEnd = 8 // end of the fixed header: byte count, address, type
	sumLen  = 2
)

var (
	// ErrShortRecord is returned for a non-empty line that is too short to
	// contain the header and the checksum.
	ErrShortRecord = errors.New("record too short")

	// ErrShortWord is returned for a data record whose payload length isn't
	// a multiple of WordLen.
	ErrShortWord = errors.New("data field length not a multiple of 4")
)

// Record contains the fields of the one Intel HEX line as they appear in the
// file.
type Record struct {
	Line      string // line without surrounding spaces and start codes
	ByteCount string // [0:2]
	Address   string // [2:6]
	Type      string // [6:8]
	Data      string // [8:len-2]
	Checksum  string // [len-2:]
}

// ParseRecord splits line into record fields.
func ParseRecord(line string) (Record, error) {
	line = strings.ReplaceAll(strings.TrimSpace(line), StartCode, "")
	n := len(line)
	if n < typeEnd+sumLen {
		return Record{}, ErrShortRecord
	}
	return Record{
		Line:      line,
		ByteCount: line[0:2],
		Address:   line[2:6],
		Type:      line[6:typeEnd],
		Data:      line[typeEnd : n-sumLen],
		Checksum:  line[n-sumLen:],
	}, nil
}

// IsData reports whether r is a data record.
func (r Record) IsData() bool {
	return r.Type == TypeData
}

// Words returns the instruction words carried by the data record r. It returns
// nil for other record types.
func (r Record) Words() ([]string, error) {
	if !r.IsData() {
		return nil, nil
	}
	if len(r.Data)%WordLen != 0 {
		return nil, ErrShortWord
	}
	words := make([]string, 0, len(r.Data)/WordLen)
	for i := 0; i < len(r.Data); i += WordLen {
		words = append(words, Swap(r.Data[i:i+WordLen]))
	}
	return words, nil
}

// Swap swaps the two bytes of the hex encoded 16-bit word: AABB -> BBAA.
// It panics if len(w) != WordLen.
func Swap(w string) string {
	if len(w) != WordLen {
		panic("ihex: bad word length")
	}
	return w[2:4] + w[0:2]
}
