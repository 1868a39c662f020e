package main

import (
	"fmt"

	"github.com/jessevdk/go-flags"
	"github.com/wallera-computer/bip32/hdkey"
)

type config struct {
	Network string `short:"n" long:"network" default:"mainnet" choice:"mainnet" choice:"testnet" description:"Network whose version bytes the extended key carries"`
	Public  bool   `short:"p" long:"public" description:"Print the neutered (xpub) form of the derived key"`
	GenSeed int    `long:"genseed" value-name:"BYTES" description:"Print a random hex seed of the given size and exit"`
	Verbose bool   `short:"v" long:"verbose" description:"Log every derivation detail to stderr"`

	Args struct {
		Seed string `positional-arg-name:"seed" description:"Hex encoded seed, or - to read it from stdin"`
		Path string `positional-arg-name:"path" description:"Derivation path such as m/0H/1"`
	} `positional-args:"yes"`

	network hdkey.Network
}

// loadConfig parses args into a config. Parser options are taken as an
// argument so tests can silence go-flags' own error printing.
func loadConfig(args []string, opts flags.Options) (*config, error) {
	cfg := &config{}

	parser := flags.NewParser(cfg, opts)
	parser.Usage = "[OPTIONS] <seed> <path>"

	rest, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}

	if len(rest) > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", rest)
	}

	cfg.network, err = hdkey.ParseNetwork(cfg.Network)
	if err != nil {
		return nil, err
	}

	if cfg.GenSeed != 0 {
		return cfg, nil
	}

	if cfg.Args.Seed == "" || cfg.Args.Path == "" {
		return nil, fmt.Errorf("both a seed and a derivation path are required")
	}

	return cfg, nil
}
