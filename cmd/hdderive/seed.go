package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const stdinSeed = "-"

// readSeed decodes the hex seed given on the command line. A seed of "-" is
// read from stdin instead, without echo when stdin is a terminal.
func readSeed(arg string, stdin io.Reader, prompt io.Writer) ([]byte, error) {
	raw := []byte(arg)

	if arg == stdinSeed {
		var err error
		raw, err = readSeedInput(stdin, prompt)
		if err != nil {
			return nil, fmt.Errorf("cannot read seed, %w", err)
		}
	}
	defer zero(raw)

	trimmed := strings.TrimSpace(string(raw))
	seed, err := hex.DecodeString(strings.TrimPrefix(trimmed, "0x"))
	if err != nil {
		return nil, fmt.Errorf("seed is not valid hex, %w", err)
	}

	return seed, nil
}

func readSeedInput(stdin io.Reader, prompt io.Writer) ([]byte, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "Seed (hex): ")
		defer fmt.Fprintln(prompt)

		return term.ReadPassword(int(f.Fd()))
	}

	line, err := bufio.NewReader(stdin).ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if len(line) == 0 {
		return nil, io.ErrUnexpectedEOF
	}

	return line, nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
