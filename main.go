package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/cheggaaa/pb/v3"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := loadConfig(os.Args[1:], os.Getenv)
	if err != nil {
		log.Fatal(err)
	}
	logger := newLogger(os.Stdout, cfg.Debug)

	lead, err := readLead(cfg.LeadFile, os.Stdin)
	if err != nil {
		logger.Fatal().Err(err).Str("file", cfg.LeadFile).
			Msg("Файл с лидом имеет неправильный формат. Он должен содержать JSON-объект со строковыми значениями")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println("Отправка данных...")
	var reporter Reporter = NewConsoleReporter(logger, cfg.Debug)
	if !cfg.Quiet {
		bar := pb.New(1).SetWriter(os.Stderr).Start()
		reporter = newProgressReporter(bar, reporter)
	}

	submitter := NewSubmitter(cfg, nil, logger)
	submitter.Run(ctx, lead, reporter)

	exitProgram(cfg.Wait)
}

func newLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "2006-01-02 15:04:05.000"}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func exitProgram(wait bool) {
	if !wait {
		return
	}
	fmt.Println("Нажмите клавишу Enter для завершения работы программы...")
	_, _ = fmt.Scanln()
}
