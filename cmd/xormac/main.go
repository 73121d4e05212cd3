// Package main provides xormac, a command that computes or verifies the
// XOR-encrypted djb2 MAC of a file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/opd-ai/bufcrypt/crypto"
	"github.com/opd-ai/bufcrypt/file"
	"github.com/opd-ai/bufcrypt/internal/cli"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Exit codes.
const (
	exitOK           = 0
	exitError        = 1
	exitNotAuthentic = 2
)

// CLIConfig holds the parsed command line.
type CLIConfig struct {
	common  cli.CommonFlags
	verify  string
	path    string
	keyText string
}

var errUsage = errors.New("wrong number of arguments")

func parseCLIFlags(fs *flag.FlagSet, args []string) (*CLIConfig, error) {
	c := &CLIConfig{}
	c.common.Register(fs)
	fs.StringVar(&c.verify, "verify", "", "Expected MAC (e.g. 0x48BAE3B918FF90A8); verify instead of printing")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.common.Help {
		return c, nil
	}
	if fs.NArg() != 2 {
		return nil, errUsage
	}
	c.path, c.keyText = fs.Arg(0), fs.Arg(1)
	return c, nil
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, "Usage: %s [options] <file> <key>\n", fs.Name())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintf(w, "  %s message.txt s3cr3t_p4ssw0rd\n", fs.Name())
	fmt.Fprintf(w, "  %s -verify 0x48BAE3B918FF90A8 message.txt s3cr3t_p4ssw0rd\n", fs.Name())
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer, fsys afero.Fs) int {
	fs := flag.NewFlagSet("xormac", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	c, err := parseCLIFlags(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(stdout, fs)
		return exitOK
	}
	if err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		printUsage(stderr, fs)
		return exitError
	}
	if c.common.Help {
		printUsage(stdout, fs)
		return exitOK
	}

	cfg, err := c.common.LoadConfig(fs, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return exitError
	}

	var expected crypto.MAC
	if c.verify != "" {
		if expected, err = crypto.ParseMAC(c.verify); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitError
		}
	}

	key, err := cli.DecodeKey(c.keyText, c.common.Escaped)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to use key: %v\n", err)
		return exitError
	}
	defer crypto.Wipe(key)

	message, err := file.NewStore(fsys, file.WithMaxSize(cfg.MaxFileSize)).Read(c.path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to read file: %v\n", err)
		return exitError
	}
	cli.DebugDump("message", message)

	if c.verify == "" {
		mac, err := crypto.ComputeMAC(message, key)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitError
		}
		fmt.Fprintf(stdout, "MAC: %s\n", mac)
		return exitOK
	}

	ok := crypto.VerifyMAC(message, key, expected)
	logrus.WithFields(logrus.Fields{
		"file":      c.path,
		"mac":       expected.String(),
		"authentic": ok,
	}).Debug("Verified MAC")

	if !ok {
		fmt.Fprintln(stdout, "Message is not authentic")
		return exitNotAuthentic
	}
	fmt.Fprintln(stdout, "Message is authentic")
	return exitOK
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, afero.NewOsFs()))
}
