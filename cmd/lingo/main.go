// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/k0kubun/pp/v3"
	"github.com/mattn/go-isatty"

	"github.com/ezrec/lingo/challenge"
	"github.com/ezrec/lingo/emulator"
	"github.com/ezrec/lingo/machine"
	"github.com/ezrec/lingo/translate"
)

func main() {
	var challengeId int
	var catalogFile string
	var list bool
	var initialA int
	var initialB int
	var input string
	var output string
	var delay time.Duration
	var maxTicks int
	var solution bool
	var lang string
	var verbose bool

	flag.IntVar(&challengeId, "c", -1, "Challenge to attempt")
	flag.StringVar(&catalogFile, "C", "", "Additional .yaml challenge catalog")
	flag.BoolVar(&list, "l", false, "List challenges")
	flag.IntVar(&initialA, "a", 0, "Initial value of A, without a challenge")
	flag.IntVar(&initialB, "b", 0, "Initial value of B, without a challenge")
	flag.StringVar(&input, "i", "", "Tape input (default stdin, or the challenge sample with -x)")
	flag.StringVar(&output, "o", "-", "Tape output")
	flag.DurationVar(&delay, "d", 0, "Delay between steps")
	flag.IntVar(&maxTicks, "n", emulator.DEFAULT_MAX_TICKS, "Step limit, 0 for none")
	flag.BoolVar(&solution, "x", false, "Run the challenge's reference solution")
	flag.StringVar(&lang, "L", "", "Message language")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if len(lang) != 0 {
		translate.SetLanguage(lang)
	}

	catalog := challenge.Builtin()
	if len(catalogFile) != 0 {
		inf, err := os.Open(catalogFile)
		if err != nil {
			log.Fatalf("%v: %v", catalogFile, err)
		}
		extra, err := challenge.Load(inf)
		inf.Close()
		if err != nil {
			log.Fatalf("%v: %v", catalogFile, err)
		}
		catalog, err = challenge.Merge(catalog.All(), extra.All())
		if err != nil {
			log.Fatalf("%v: %v", catalogFile, err)
		}
	}

	if list {
		for ch := range catalog.All() {
			fmt.Printf("%2d: %v\n", ch.Id, ch.Title)
		}
		return
	}

	var ch *challenge.Challenge
	if challengeId >= 0 {
		var err error
		ch, err = catalog.Get(challengeId)
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
		initialA = ch.InitialA
		initialB = ch.InitialB
	}

	var program []string
	switch {
	case solution:
		if ch == nil {
			log.Fatalf("%v: -x requires -c", os.Args[0])
		}
		if flag.NArg() != 0 {
			log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
		}
		program = ch.Solution
	case flag.NArg() == 1:
		source := flag.Arg(0)
		inf, err := os.Open(source)
		if err != nil {
			log.Fatalf("%v: %v", source, err)
		}
		program, err = machine.ReadSource(inf)
		inf.Close()
		if err != nil {
			log.Fatalf("%v: %v", source, err)
		}
	default:
		log.Fatalf("%v: Expected one program file, got: %v", os.Args[0], flag.Args())
	}

	if ch != nil {
		err := ch.Validate(program)
		if err != nil {
			log.Fatalf("%v: %v", ch.Title, err)
		}
		fmt.Fprintf(os.Stderr, "%v\n%v\n", ch.Title, ch.Description)
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Program = program
	emu.InitialA = initialA
	emu.InitialB = initialB
	emu.Delay = delay
	emu.MaxTicks = maxTicks

	if verbose {
		emu.Trace = func(res machine.Result) {
			log.Printf("%03d: %v", emu.SourceLine(res.Line), res.Message)
		}
	}

	emu.Reset()

	switch {
	case len(input) == 0 && solution:
		emu.Tape.Input = sampleInput(ch.Inputs)
	case len(input) == 0 || input == "-":
		emu.Tape.Input = os.Stdin
		if isatty.IsTerminal(os.Stdin.Fd()) {
			emu.Tape.Prompt = os.Stderr
		}
	default:
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		emu.Tape.Input = inf
	}

	if output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := emu.Run(ctx)

	if verbose {
		pp.Fprintln(os.Stderr, emu.Snapshot())
	}

	if err != nil {
		log.Fatal(err)
	}

	if ch != nil {
		verdict, err := ch.Check(emu.Snapshot(), emu.Tape.Consumed())
		if err != nil {
			log.Fatalf("%v: %v", ch.Title, err)
		}
		fmt.Fprintln(os.Stderr, verdict.Message)
		if !verdict.Passed {
			os.Exit(1)
		}
	}
}

// sampleInput makes a tape input from a challenge's sample inputs.
func sampleInput(inputs []int) io.Reader {
	words := make([]string, len(inputs))
	for n, value := range inputs {
		words[n] = strconv.Itoa(value)
	}

	return strings.NewReader(strings.Join(words, " "))
}
