package profile

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadProfile(t *testing.T) {
	in := `{"ballots": [["A", "B", "C"], ["B", "C"]]}`

	p, err := ReadProfile(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadProfile() error = %v", err)
	}
	if p.BallotCount() != 2 {
		t.Errorf("BallotCount() = %d, want 2", p.BallotCount())
	}
	if p.CandidateCount() != 3 {
		t.Errorf("CandidateCount() = %d, want 3", p.CandidateCount())
	}
}

func TestReadProfile_Malformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"invalid json", `{"ballots": [`},
		{"duplicate in ballot", `{"ballots": [["A", "A"]]}`},
		{"empty profile", `{"ballots": []}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ReadProfile(strings.NewReader(tc.in)); err == nil {
				t.Errorf("ReadProfile(%q) error = nil, want error", tc.in)
			}
		})
	}
}

func TestMarshalProfile_Deterministic(t *testing.T) {
	p, err := New([]Ballot{{"A", "B"}, {"B", "A"}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	first, err := MarshalProfile(p)
	if err != nil {
		t.Fatalf("MarshalProfile() error = %v", err)
	}
	second, err := MarshalProfile(p)
	if err != nil {
		t.Fatalf("MarshalProfile() error = %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("MarshalProfile() output is not deterministic")
	}
}

func TestProfileFile_RoundTrip(t *testing.T) {
	p, err := New([]Ballot{{"A", "B", "C"}, {"C", "A"}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "profile.json")
	if err := WriteProfileFile(p, path); err != nil {
		t.Fatalf("WriteProfileFile() error = %v", err)
	}

	got, err := ReadProfileFile(path)
	if err != nil {
		t.Fatalf("ReadProfileFile() error = %v", err)
	}

	if got.BallotCount() != p.BallotCount() {
		t.Errorf("BallotCount() = %d, want %d", got.BallotCount(), p.BallotCount())
	}
	wantSecond := []string{"C", "A"}
	gotSecond := got.Ballots()[1]
	for i := range wantSecond {
		if gotSecond[i] != wantSecond[i] {
			t.Errorf("Ballots()[1][%d] = %q, want %q", i, gotSecond[i], wantSecond[i])
		}
	}
}
