package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/matzehuels/stableset/pkg/errors"
	"github.com/matzehuels/stableset/pkg/profile"
	"github.com/matzehuels/stableset/pkg/tournament"
)

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	return os.Create(path)
}

// loadProfile reads a profile JSON file.
func loadProfile(path string) (*profile.Profile, error) {
	p, err := profile.ReadProfileFile(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "profile file %s not found", path)
	}
	if err != nil {
		return nil, fmt.Errorf("load profile %s: %w", path, err)
	}
	return p, nil
}

// loadGraph reads a dominance graph JSON file.
func loadGraph(path string) (*tournament.Graph, error) {
	f, err := os.Open(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "graph file %s not found", path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := tournament.ReadGraph(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "load graph %s", path)
	}
	return g, nil
}
