package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/signup/internal/registration"
)

// errInvalidRecord makes check and register exit non-zero after printing
// the field errors.
var errInvalidRecord = errors.New("record is invalid")

// readRecord decodes a registration record from a YAML or JSON file, or from
// stdin when path is "-". Unknown keys are rejected.
func readRecord(path string, stdin io.Reader) (registration.Input, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return registration.Input{}, fmt.Errorf("opening record: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var in registration.Input
	if err := dec.Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return registration.Input{}, fmt.Errorf("record %s is empty", path)
		}
		return registration.Input{}, fmt.Errorf("decoding record %s: %w", path, err)
	}
	return in, nil
}

// printResult writes one "field: message" line per failing field.
func printResult(w io.Writer, result registration.Result) {
	for _, f := range result.Fields() {
		_, _ = fmt.Fprintf(w, "%s: %s\n", f, result.Message(f))
	}
}
