package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vancomm/buscaminas/internal/app"
	"github.com/vancomm/buscaminas/internal/config"
	"github.com/vancomm/buscaminas/internal/logging"
	"github.com/vancomm/buscaminas/internal/mines"
	"github.com/vancomm/buscaminas/internal/tui"
)

type options struct {
	configPath string
	rows       int
	cols       int
	mines      int
	seed       uint64
	logFile    string
	logLevel   string

	view string
	open []string
	addr string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "buscaminas [rows cols mines]",
		Short: "Minesweeper board engine with a terminal front end",
		Long: `Lays mines on a rows x cols board and lets you open cells in the terminal.
The dump and serve commands render boards as text for other tools.`,
		Args:         boardArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, args, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file path")
	flags.IntVar(&opts.rows, "rows", 0, "number of rows")
	flags.IntVar(&opts.cols, "cols", 0, "number of columns")
	flags.IntVar(&opts.mines, "mines", 0, "number of mines")
	flags.Uint64Var(&opts.seed, "seed", 0, "seed for reproducible layouts")
	flags.StringVar(&opts.logFile, "log-file", "", "write JSON logs to this rotating file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")

	playCmd := &cobra.Command{
		Use:   "play [rows cols mines]",
		Short: "Play in the terminal",
		Args:  boardArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, args, opts)
		},
	}

	dumpCmd := &cobra.Command{
		Use:   "dump [rows cols mines]",
		Short: "Shuffle a board and print one rendering of it",
		Args:  boardArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, args, opts)
		},
	}
	dumpCmd.Flags().StringVar(&opts.view, "view", string(mines.ViewUncover), "cover, uncover or split")
	dumpCmd.Flags().StringSliceVar(&opts.open, "open", nil, "cells to open before rendering, as row:col")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve board dumps over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
	serveCmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (overrides config and APP_PORT)")

	rootCmd.AddCommand(playCmd, dumpCmd, serveCmd)
	return rootCmd
}

// boardArgs accepts either no positional arguments or exactly rows, cols
// and mines.
func boardArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 3 {
		return fmt.Errorf("expected no arguments or <rows> <cols> <mines>, got %d", len(args))
	}
	for _, a := range args {
		if _, err := strconv.Atoi(a); err != nil {
			return fmt.Errorf("invalid board argument %q: %w", a, err)
		}
	}
	return nil
}

// loadConfig layers defaults, the config file, the environment, flags and
// positional arguments, in that order.
func loadConfig(cmd *cobra.Command, args []string, opts *options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		if err := config.Read(opts.configPath, &cfg); err != nil {
			return cfg, err
		}
	}
	cfg.ApplyEnv()

	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Board.Rows = opts.rows
	}
	if flags.Changed("cols") {
		cfg.Board.Cols = opts.cols
	}
	if flags.Changed("mines") {
		cfg.Board.Mines = opts.mines
	}
	if flags.Changed("seed") {
		seed := opts.seed
		cfg.Board.Seed = &seed
	}
	if flags.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("addr") {
		cfg.Addr = opts.addr
	}

	if len(args) == 3 {
		// boardArgs already checked these
		cfg.Board.Rows, _ = strconv.Atoi(args[0])
		cfg.Board.Cols, _ = strconv.Atoi(args[1])
		cfg.Board.Mines, _ = strconv.Atoi(args[2])
	}

	return cfg, cfg.Validate()
}

func newBoard(cfg config.Config, log *logrus.Logger) (*mines.Board, error) {
	mines.Log = log
	board, err := mines.Make(cfg.Board.Rows, cfg.Board.Cols, cfg.Board.Mines, cfg.Board.Options()...)
	if err != nil {
		return nil, err
	}
	board.Shuffle()
	return board, nil
}

func runPlay(cmd *cobra.Command, args []string, opts *options) error {
	cfg, err := loadConfig(cmd, args, opts)
	if err != nil {
		return err
	}

	// the terminal belongs to the UI, logs only go to the file if any
	log, err := logging.New(cfg.Log, cfg.Development(), io.Discard)
	if err != nil {
		return err
	}
	log.WithFields(cfg.Fields()).Debug("config")

	board, err := newBoard(cfg, log)
	if err != nil {
		return err
	}

	log.Info("starting game")
	if err := tui.Run(board, log); err != nil {
		log.WithError(err).Error("terminal front end failed")
		return err
	}
	log.Info("game closed")
	return nil
}

func runDump(cmd *cobra.Command, args []string, opts *options) error {
	cfg, err := loadConfig(cmd, args, opts)
	if err != nil {
		return err
	}

	view, err := mines.ParseView(opts.view)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Log, cfg.Development(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	board, err := newBoard(cfg, log)
	if err != nil {
		return err
	}

	for _, p := range opts.open {
		row, col, err := mines.ParsePosition(p)
		if err != nil {
			return err
		}
		if err := board.Open(row, col); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if view == mines.ViewUncover {
		return board.Dumps(out)
	}
	_, err = io.WriteString(out, board.Render(view).String())
	return err
}

func runServe(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, nil, opts)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Log, cfg.Development(), os.Stderr)
	if err != nil {
		return err
	}
	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.New(log, cfg).Start(ctx); err != nil {
		log.WithError(err).Error("server stopped")
		return err
	}
	return nil
}
