package main

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/wallera-computer/bip32/hdkey"
	"github.com/wallera-computer/bip32/log"
	"go.uber.org/zap"
)

func main() {
	cfg, err := loadConfig(os.Args[1:], flags.Default)
	if err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) {
			// go-flags already printed it
			if fe.Type == flags.ErrHelp {
				os.Exit(0)
			}
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}

	l := log.Development(cfg.Verbose).Sugar()
	defer func() { _ = l.Sync() }()

	if err := run(cfg, os.Stdin, os.Stdout, rand.Reader, l); err != nil {
		l.Errorw("cannot derive key", "error", err)
		os.Exit(1)
	}
}

// run executes cfg, printing its single result line to stdout. rnd is the
// entropy source for --genseed.
func run(cfg *config, stdin io.Reader, stdout io.Writer, rnd io.Reader, l *zap.SugaredLogger) error {
	if cfg.GenSeed != 0 {
		seed, err := hdkey.GenerateSeed(rnd, cfg.GenSeed)
		if err != nil {
			return err
		}

		l.Debugw("generated seed", "bytes", len(seed))
		_, err = fmt.Fprintln(stdout, hex.EncodeToString(seed))
		zero(seed)

		return err
	}

	seed, err := readSeed(cfg.Args.Seed, stdin, os.Stderr)
	if err != nil {
		return err
	}
	defer zero(seed)

	path, err := hdkey.ParsePath(cfg.Args.Path)
	if err != nil {
		return err
	}

	l.Debugw("deriving", "network", cfg.network, "path", path.String(), "seed bytes", len(seed))

	master, err := hdkey.NewMaster(seed, cfg.network)
	if err != nil {
		return err
	}
	defer master.Zero()

	key, err := path.Derive(master)
	if err != nil {
		return err
	}

	if cfg.Public {
		key, err = key.Neuter()
		if err != nil {
			return err
		}
	}

	fp := key.ParentFingerprint()
	l.Debugw("derived key",
		"depth", key.Depth(),
		"parent fingerprint", hex.EncodeToString(fp[:]),
		"child index", key.ChildIndex(),
		"hardened", key.IsHardened(),
		"private", key.IsPrivate(),
	)

	_, err = fmt.Fprintln(stdout, key.String())
	return err
}
