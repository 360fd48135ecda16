// Command cwclassify keys Morse symbols at one speed, buffers the samples
// and classifies them against a dictionary sampled at another speed.
//
// Usage:
//
//	cwclassify [flags] [symbols]
//
// Without arguments it classifies "5". Each non-space character is keyed and
// classified on its own; spaces only separate words.
//
// Examples:
//
//	cwclassify
//	cwclassify -send-wpm 18 -assume-wpm 20 PARIS
//	cwclassify -noise 0.05 -seed 7 -top 3 Q
//	cwclassify -config run.yaml -block
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"unicode"

	"github.com/npillmayer/schuko/tracing"

	"github.com/cwbudde/algo-cw/cw/classify"
	"github.com/cwbudde/algo-cw/dsp/buffer"
	"github.com/cwbudde/algo-cw/dsp/core"
	"github.com/cwbudde/algo-cw/dsp/signal"
)

func main() {
	configPath := flag.String("config", "", "YAML file with run defaults")
	interval := flag.Float64("interval", 0, "sample interval in ms")
	sendWPM := flag.Float64("send-wpm", 0, "keying speed of the sent symbols")
	assumeWPM := flag.Float64("assume-wpm", 0, "speed assumed by the classifier")
	capacity := flag.Int("capacity", 0, "sample buffer capacity")
	noise := flag.Float64("noise", -1, "probability of inverting a sample")
	seed := flag.Int64("seed", 0, "noise seed")
	top := flag.Int("top", 0, "number of ranked candidates to print")
	permissive := flag.Bool("permissive", false, "compare candidates longer than the buffered data")
	block := flag.Bool("block", false, "use the block comparator")
	dict := flag.String("dict", "", "YAML dictionary file")
	verbose := flag.Bool("v", false, "trace classifier decisions")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cwclassify [flags] [symbols]\n\n")
		fmt.Fprintf(os.Stderr, "Keys each symbol, buffers it and prints the best dictionary matches.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  cwclassify -send-wpm 18 -assume-wpm 20 PARIS\n")
		fmt.Fprintf(os.Stderr, "  cwclassify -noise 0.05 -seed 7 -top 3 Q\n")
	}
	flag.Parse()

	cfg := defaultRunConfig()
	if *configPath != "" {
		var err error
		if cfg, err = loadRunConfig(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "interval":
			cfg.IntervalMs = *interval
		case "send-wpm":
			cfg.SendWPM = *sendWPM
		case "assume-wpm":
			cfg.AssumeWPM = *assumeWPM
		case "capacity":
			cfg.Capacity = *capacity
		case "noise":
			cfg.Noise = *noise
		case "seed":
			cfg.Seed = *seed
		case "top":
			cfg.Top = *top
		case "permissive":
			cfg.Permissive = *permissive
		case "block":
			cfg.Block = *block
		case "dict":
			cfg.Dictionary = *dict
		}
	})
	if err := cfg.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if *verbose {
		tracing.Select("cw").SetTraceLevel(tracing.LevelDebug)
	}

	text := "5"
	if flag.NArg() > 0 {
		text = strings.Join(flag.Args(), " ")
	}

	if err := run(os.Stdout, cfg, text); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, cfg runConfig, text string) error {
	dict, err := cfg.dictionary()
	if err != nil {
		return err
	}
	keyer, err := signal.NewKeyerWithOptions(
		[]core.KeyingOption{core.WithSampleInterval(cfg.IntervalMs), core.WithSpeed(cfg.SendWPM)},
		signal.WithDictionary(dict), signal.WithSeed(cfg.Seed),
	)
	if err != nil {
		return err
	}
	c, err := classify.New(dict,
		classify.WithSampleInterval(cfg.IntervalMs),
		classify.WithAssumedSpeed(cfg.AssumeWPM),
		classify.WithPermissive(cfg.Permissive),
	)
	if err != nil {
		return err
	}
	buf, err := buffer.NewFIFO(cfg.Capacity)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Sent\tSamples\tRank\tSymbol\tPattern\tError\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "----\t-------\t----\t------\t-------\t-----\n"); err != nil {
		return err
	}
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		samples, err := keyer.Symbol(r)
		if err != nil {
			return err
		}
		if samples, err = keyer.Impair(samples, cfg.Noise); err != nil {
			return err
		}
		buf.Clear()
		buf.WriteSlice(samples)

		ranked, err := rank(c, buf, cfg)
		if err != nil {
			return fmt.Errorf("classify %q: %w", r, err)
		}
		for i, m := range ranked[:min(cfg.Top, len(ranked))] {
			if _, err := fmt.Fprintf(tw, "%c\t%d\t%d\t%c\t%s\t%.5f\n",
				r, buf.Available(), i+1, m.Entry.Symbol, m.Entry.Code.Pattern(), m.Error); err != nil {
				return err
			}
		}
	}
	return tw.Flush()
}

func rank(c *classify.Classifier, buf *buffer.FIFO, cfg runConfig) ([]classify.Match, error) {
	if cfg.Block {
		m, err := c.ClassifyBlock(buf)
		if err != nil {
			return nil, err
		}
		return []classify.Match{m}, nil
	}
	return c.Rank(buf)
}
