// Command newwords discovers likely multi-character words in an
// unsegmented corpus by running the statistical discovery pipeline
// described in the project's specification: segment, count, score for
// cohesion, filter by frequency and length, filter by contextual freedom,
// then rank and emit.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/renewboy/new-words-discoverer/internal/cohesion"
	"github.com/renewboy/new-words-discoverer/internal/config"
	"github.com/renewboy/new-words-discoverer/internal/counter"
	"github.com/renewboy/new-words-discoverer/internal/filter"
	"github.com/renewboy/new-words-discoverer/internal/ngram"
	"github.com/renewboy/new-words-discoverer/internal/pipeline"
	"github.com/renewboy/new-words-discoverer/internal/rank"
	"github.com/renewboy/new-words-discoverer/internal/runlog"
	"github.com/renewboy/new-words-discoverer/internal/segment"
)

// scannerBufSize enlarges bufio.Scanner's line buffer so unusually long
// paragraphs don't get truncated; sized the way the az-lang-nlp corpus
// builder sizes its own scanner buffer.
const scannerBufSize = 4 * 1024 * 1024

func main() {
	log.SetFlags(0)
	log.SetPrefix("newwords: ")

	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		if err == config.ErrShowHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "invalid option(s): %s\n", config.EchoArgs(os.Args[1:]))
		log.Println(err)
		os.Exit(1)
	}

	logger := runlog.New(os.Stdout)

	if err := run(cfg, logger); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *runlog.Logger) error {
	start := time.Now()

	// Go strings are UTF-8 natively; unlike the original implementation,
	// no process-wide locale initialization is needed to decode the
	// corpus or write the result artifact.
	in, err := os.Open(cfg.File)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", cfg.File, err)
	}
	defer in.Close()

	logger.Progress("proccessing file %s ...", cfg.File)
	table, err := countCorpus(in, cfg.Thresholds.MaxWordLen)
	if err != nil {
		return err
	}
	logger.Progress("done.")

	logger.Progress("calculating firmness ...")
	if err := cohesion.Compute(table, cfg.Thresholds.FirmnessThr); err != nil {
		return err
	}
	filter.ByFreqAndLength(table, cfg.Thresholds.FreqThr)
	logger.Progress("done.")

	logger.Progress("calculating degree of freedom ...")
	filter.ByFreedom(table, cfg.Thresholds.DFThr)
	logger.Progress("done.")

	entries := rank.Survivors(table)

	outPath := rank.OutputPath(cfg.File)
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", outPath, err)
	}
	defer out.Close()

	if err := rank.WriteTo(out, entries); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	rank.MarkEmitted(table)

	fmt.Printf("The results are stored in %s\n", outPath)
	fmt.Printf("Total time elapsed: %v\n", time.Since(start))
	return nil
}

// countCorpus runs the Sentence Pipeline: a producer goroutine reads
// paragraphs from corpus and segments them, a single consumer goroutine
// drains the pipeline and runs the N-gram Enumerator against a freshly
// created Counter Table (spec §4.2, §4.3).
func countCorpus(corpus *os.File, maxWordLen uint) (*counter.Table, error) {
	table := counter.NewTable(0)
	table.SetPhase(counter.Counting)

	p := pipeline.New()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		p.Consume(func(sentence string) {
			ngram.Enumerate(table, sentence, maxWordLen)
		})
	}()

	scanner := bufio.NewScanner(corpus)
	scanner.Buffer(make([]byte, 0, 64*1024), scannerBufSize)
	for scanner.Scan() {
		paragraph := scanner.Text()
		if paragraph == "" {
			continue
		}
		for _, sentence := range segment.Split(paragraph) {
			p.Push(sentence)
		}
	}
	scanErr := scanner.Err()

	p.Close()
	wg.Wait()

	if scanErr != nil {
		return nil, fmt.Errorf("reading corpus: %w", scanErr)
	}
	return table, nil
}
