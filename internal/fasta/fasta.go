// Package fasta reads nucleotide records from plain or gzipped FASTA files.
package fasta

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	gzip "github.com/klauspost/pgzip"
)

var (
	// ErrNotFound is returned when the input file doesn't exist or can't be opened.
	ErrNotFound = errors.New("input not found")

	// ErrParse is returned for content that isn't FASTA.
	ErrParse = errors.New("malformed FASTA")

	// ErrEmpty is returned for a file without records, or a record without bases.
	ErrEmpty = errors.New("empty sequence")

	// ErrNoRecord is returned when a requested record ID isn't in the file.
	ErrNoRecord = errors.New("record not found")
)

// Record is a single FASTA entry. Seq is upper case.
type Record struct {
	// ID is the first word of the header line
	ID string `json:"id"`

	// Desc is the rest of the header line
	Desc string `json:"desc,omitempty"`

	Seq string `json:"-"`
}

// Len is the number of bases in the record.
func (r Record) Len() int {
	return len(r.Seq)
}

// Read parses every record from the file at path. Files ending in .gz or
// starting with the gzip magic number are decompressed.
func Read(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	defer f.Close()

	if info, err := f.Stat(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	} else if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}

	br := bufio.NewReader(f)
	var r io.Reader = br
	if sig, _ := br.Peek(2); strings.HasSuffix(path, ".gz") || (len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b) {
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
		}
		defer gr.Close()
		r = gr
	}

	records, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Parse reads every record from r.
func Parse(r io.Reader) ([]Record, error) {
	br := bufio.NewReader(r)
	if err := checkHeader(br); err != nil {
		return nil, err
	}

	template := linear.NewSeq("", nil, alphabet.DNA)
	sc := seqio.NewScanner(biofasta.NewReader(br, template))

	var records []Record
	for sc.Next() {
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected sequence type %T", ErrParse, sc.Seq())
		}

		bases := make([]byte, len(s.Seq))
		for i, l := range s.Seq {
			bases[i] = byte(l)
		}

		records = append(records, Record{
			ID:   s.ID,
			Desc: s.Desc,
			Seq:  strings.ToUpper(string(bases)),
		})
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if len(records) == 0 {
		return nil, ErrEmpty
	}
	return records, nil
}

// checkHeader makes sure the first non-blank byte starts a header line.
func checkHeader(br *bufio.Reader) error {
	for {
		b, err := br.Peek(1)
		if err == io.EOF {
			return ErrEmpty
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrParse, err)
		}

		switch b[0] {
		case ' ', '\t', '\r', '\n':
			_, _ = br.ReadByte()
		case '>':
			return nil
		default:
			return fmt.Errorf("%w: expected '>' header, found %q", ErrParse, b[0])
		}
	}
}

// Select returns the record with the given ID, or the first record if id is
// empty. The chosen record must have bases.
func Select(records []Record, id string) (Record, error) {
	if len(records) == 0 {
		return Record{}, ErrEmpty
	}

	rec := records[0]
	if id != "" {
		found := false
		for _, r := range records {
			if r.ID == id {
				rec, found = r, true
				break
			}
		}
		if !found {
			return Record{}, fmt.Errorf("%w: %s", ErrNoRecord, id)
		}
	}

	if rec.Len() == 0 {
		return Record{}, fmt.Errorf("%w: record %s has no bases", ErrEmpty, rec.ID)
	}
	return rec, nil
}
