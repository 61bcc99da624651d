package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// openOutput opens file for writing, or stdout if file is empty or "-".
func openOutput(file string) (io.WriteCloser, error) {
	if file == "" || file == "-" {
		return nopCloser{os.Stdout}, nil
	}

	result, err := os.Create(file)
	if err != nil {
		return nil, errors.Wrapf(err, "error creating %v", file)
	}

	return result, nil
}

func writeOutput(file string, write func(w io.Writer) error) error {
	out, err := openOutput(file)
	if err != nil {
		return err
	}

	err = write(out)
	if err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}
