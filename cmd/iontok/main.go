package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io/ioutil"
	"log"
	"log/slog"
	"os"

	"github.com/ion-text/iontext/ionlex"
	"github.com/ion-text/iontext/util"

	"github.com/jessevdk/go-flags"
	"github.com/k0kubun/pp/v3"
	"golang.org/x/term"
)

var version string

type options struct {
	File         string `long:"file" short:"f" description:"Read Ion text from the file, rather than stdin" value-name:"ion_file" default:"-"`
	Pretty       bool   `long:"pretty" description:"Print one token per line, column-aligned to the terminal width"`
	Debug        bool   `long:"debug" description:"Pretty-print each token's descriptor via pp"`
	MaxLookahead int    `long:"max-lookahead" description:"Number of tokens to buffer ahead while scanning" value-name:"n" default:"1"`
	Version      bool   `long:"version" description:"Show this version"`
	Help         bool   `long:"help" description:"Show this help"`
}

func main() {
	util.InitSlog()

	opts := parseOptions(os.Args[1:])

	src, err := readInput(opts.File)
	if err != nil {
		log.Fatalf("Failed to read '%s': %s", opts.File, err)
	}

	tkn := ionlex.NewStringTokenizer(src)
	defer tkn.Close()

	width := terminalWidth()

	for {
		if opts.MaxLookahead > 0 {
			if _, err := tkn.Lookahead(min(opts.MaxLookahead-1, 6)); err != nil {
				printLexError(err)
				os.Exit(1)
			}
		}

		kind, err := tkn.CurrentToken()
		if err != nil {
			printLexError(err)
			os.Exit(1)
		}

		start, _ := tkn.ValueStart()
		end, _ := tkn.ValueEnd()

		if opts.Debug {
			pp.Println(ionlex.Descriptor{Kind: kind, Start: start, End: end})
		} else if opts.Pretty {
			printAligned(kind, start, end, width)
		} else {
			fmt.Printf("%s [%d,%d)\n", kind, start, end)
		}

		if kind == ionlex.EOF {
			break
		}
		if err := tkn.ConsumeToken(); err != nil {
			printLexError(err)
			os.Exit(1)
		}
	}
}

func parseOptions(args []string) options {
	var opts options
	parser := flags.NewParser(&opts, flags.None)
	parser.Usage = "[options]"
	if _, err := parser.ParseArgs(args); err != nil {
		log.Fatal(err)
	}

	if opts.Help {
		parser.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	if opts.Version {
		fmt.Println(version)
		os.Exit(0)
	}
	return opts
}

func readInput(filepath string) (string, error) {
	if filepath == "-" {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return "", fmt.Errorf("stdin is not piped")
		}
		var buffer bytes.Buffer
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
		for scanner.Scan() {
			buffer.WriteString(scanner.Text())
			buffer.WriteByte('\n')
		}
		return buffer.String(), scanner.Err()
	}

	buf, err := ioutil.ReadFile(filepath)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

func terminalWidth() int {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return 80
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

func printAligned(kind ionlex.Kind, start, end, width int) {
	label := fmt.Sprintf("%-20s", kind.String())
	rangeText := fmt.Sprintf("[%d,%d)", start, end)
	line := label + rangeText
	if len(line) > width {
		line = line[:width]
	}
	fmt.Println(line)
}

func printLexError(err error) {
	slog.Error("lexical error", "error", err)
	fmt.Fprintln(os.Stderr, err)
}
