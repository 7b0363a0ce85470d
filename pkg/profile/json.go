package profile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Document is the canonical serialization format for preference profiles.
// Used for CLI input, API requests, storage, and cache keys.
//
// Ballot order and within-ballot candidate order are preserved exactly, so
// serializing the same profile always yields the same bytes. This makes the
// encoded form suitable as input to content hashing.
type Document struct {
	Ballots [][]string `json:"ballots" bson:"ballots"`
}

// FromProfile converts a Profile to its serialization format.
func FromProfile(p *Profile) Document {
	doc := Document{Ballots: make([][]string, p.BallotCount())}
	for i, b := range p.Ballots() {
		doc.Ballots[i] = b
	}
	return doc
}

// ToProfile converts a Document back into a validated Profile.
// Returns the same validation errors as [New] for malformed input.
func ToProfile(doc Document) (*Profile, error) {
	ballots := make([]Ballot, len(doc.Ballots))
	for i, b := range doc.Ballots {
		ballots[i] = Ballot(b)
	}
	return New(ballots)
}

// MarshalProfile converts a Profile to JSON bytes.
// The output is deterministic: identical profiles yield identical bytes.
func MarshalProfile(p *Profile) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteProfile(p, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteProfile writes a Profile as indented JSON to w.
func WriteProfile(p *Profile, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromProfile(p)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteProfileFile writes a Profile to a JSON file.
// The file is created with 0644 permissions.
func WriteProfileFile(p *Profile, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteProfile(p, f)
}

// ReadProfile decodes a JSON profile from r and validates it.
//
// The input must be a JSON object with a "ballots" array of arrays:
//
//	{
//	  "ballots": [["A", "B", "C"], ["B", "C", "A"]]
//	}
//
// Each inner array is one voter's ranking, best to worst. Ballots may omit
// candidates but must not repeat them. ReadProfile does not close r.
func ReadProfile(r io.Reader) (*Profile, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ToProfile(doc)
}

// ReadProfileFile reads a JSON file and returns the validated Profile.
func ReadProfileFile(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadProfile(f)
}
