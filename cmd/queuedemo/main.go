package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-queue/pkg/datastructs/queue"
	"github.com/huynhanx03/go-queue/pkg/logger"
	"github.com/huynhanx03/go-queue/pkg/settings"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	n := flag.Int("n", 20, "Number of values per pass")
	initial := flag.Int("initial", 0, "Override queue.initial_capacity")
	flag.Parse()

	cfg, err := settings.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *initial > 0 {
		cfg.Queue.InitialCapacity = *initial
		if err := settings.Validate(cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(os.Stdout, log, cfg.Queue, *n); err != nil {
		log.Error("demo failed", zap.Error(err))
		os.Exit(1)
	}
}

// run pushes 0..n-1 and drains, then pushes n..1 and drains.
func run(w io.Writer, log *zap.Logger, cfg settings.Queue, n int) error {
	q, err := queue.New(cfg.ToConfig(log))
	if err != nil {
		return errors.Wrap(err, "failed to create queue")
	}
	defer q.Free()

	fmt.Fprintln(w, "Starting test")
	for i := 0; i < n; i++ {
		if err := q.Enqueue(i); err != nil {
			return errors.Wrapf(err, "enqueue %d", i)
		}
	}
	if err := drain(w, q); err != nil {
		return err
	}

	for i := n; i > 0; i-- {
		if err := q.Enqueue(i); err != nil {
			return errors.Wrapf(err, "enqueue %d", i)
		}
	}
	if err := drain(w, q); err != nil {
		return err
	}
	fmt.Fprintln(w, "Ending test")

	st := q.Stats()
	log.Info("demo finished",
		zap.Int("capacity", q.Cap()),
		zap.Int("grows", st.Grows),
		zap.Int("moved", st.Moved),
	)
	return nil
}

func drain(w io.Writer, q *queue.Growable) error {
	for q.Len() > 0 {
		v, err := q.Dequeue()
		if err != nil {
			return errors.Wrap(err, "dequeue")
		}
		fmt.Fprintln(w, v)
	}
	return nil
}
