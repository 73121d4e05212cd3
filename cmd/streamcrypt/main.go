// Package main provides streamcrypt, a command that encrypts or decrypts a
// file with the xorshift stream cipher or the cyclic XOR pad.
//
// Encryption and decryption are the same operation, so running the command
// twice with the same key restores the original file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/opd-ai/bufcrypt/config"
	"github.com/opd-ai/bufcrypt/crypto"
	"github.com/opd-ai/bufcrypt/file"
	"github.com/opd-ai/bufcrypt/internal/cli"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// CLIConfig holds the parsed command line.
type CLIConfig struct {
	common     cli.CommonFlags
	mode       string
	inputPath  string
	outputPath string
	keyText    string
}

// parseCLIFlags parses args (without the program name).
func parseCLIFlags(fs *flag.FlagSet, args []string) (*CLIConfig, error) {
	c := &CLIConfig{}
	c.common.Register(fs)
	fs.StringVar(&c.mode, "mode", "", "Cipher: stream (xorshift keystream) or otp (cyclic key)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.common.Help {
		return c, nil
	}
	if fs.NArg() != 3 {
		return nil, errUsage
	}
	c.inputPath, c.outputPath, c.keyText = fs.Arg(0), fs.Arg(1), fs.Arg(2)
	return c, nil
}

var errUsage = errors.New("wrong number of arguments")

// printUsage prints the usage information.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, "Usage: %s [options] <input_file> <output_file> <key>\n", fs.Name())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintf(w, "  %s plain.txt cipher.bin password\n", fs.Name())
	fmt.Fprintf(w, "  %s cipher.bin plain.txt password\n", fs.Name())
	fmt.Fprintf(w, "  %s -mode otp -escaped plain.txt cipher.bin 'k\\ff\\00'\n", fs.Name())
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer, fsys afero.Fs) int {
	fs := flag.NewFlagSet("streamcrypt", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	c, err := parseCLIFlags(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(stdout, fs)
		return 0
	}
	if err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		printUsage(stderr, fs)
		return 1
	}
	if c.common.Help {
		printUsage(stdout, fs)
		return 0
	}

	cfg, err := c.common.LoadConfig(fs, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return 1
	}
	if c.mode != "" {
		cfg.Mode = c.mode
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(stderr, "Configuration error: %v\n", err)
			return 1
		}
	}

	key, err := cli.DecodeKey(c.keyText, c.common.Escaped)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to use key: %v\n", err)
		return 1
	}
	defer crypto.Wipe(key)
	cli.DebugDump("key", key)

	store := file.NewStore(fsys, file.WithMaxSize(cfg.MaxFileSize))
	if err := transform(store, store, cfg.Mode, c.inputPath, c.outputPath, key); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// transform reads input, applies the cipher selected by mode and writes
// output.
func transform(r file.Reader, w file.Writer, mode, input, output string, key []byte) error {
	buf, err := r.Read(input)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	defer crypto.Wipe(buf)
	cli.DebugDump("input", buf)

	switch mode {
	case config.ModeOTP:
		err = crypto.XORCrypt(buf, key)
	default:
		err = crypto.StreamCrypt(buf, key)
	}
	if err != nil {
		return fmt.Errorf("failed to transform file: %w", err)
	}
	cli.DebugDump("output", buf)

	if err := w.Write(output, buf); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"input":  input,
		"output": output,
		"mode":   mode,
		"size":   humanize.Bytes(uint64(len(buf))),
	}).Info("File transformed")
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, afero.NewOsFs()))
}
