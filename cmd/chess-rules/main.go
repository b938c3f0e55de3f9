// chess-rules plays random games under the full rules of chess, saves
// them, and replays saved games one state at a time.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/muesli/termenv"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/history"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/render"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	setupLogFile(cfg)

	r := render.NewFromEnv()
	if *plain {
		r = render.New(termenv.Ascii)
	}

	order, err := output.ParseSortOrder(*sortOrder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if *replayFile != "" {
		err = replayFromFile(replayWriter(cfg, r, *plain), *replayFile, *replayGame, order)
	} else {
		err = simulate(cfg, r, saveTargets{file: *saveFile, dir: *saveDir}, order)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// saveTargets says where simulated games are saved: one library file,
// one file per game in a directory, or both. Empty fields are skipped.
type saveTargets struct {
	file string
	dir  string
}

// simulate plays the configured games, reports each one and optionally
// saves them all.
func simulate(cfg *config.Config, r *render.Renderer, save saveTargets, order output.SortOrder) error {
	results, err := worker.Simulate(cfg)
	if err != nil {
		return err
	}

	var games []*history.GameHistory
	for _, res := range results {
		if res.Error != nil {
			fmt.Fprintf(cfg.OutputFile, "%s: aborted: %v\n", res.History.Name, res.Error)
			continue
		}
		reportGame(cfg.OutputFile, cfg.Verbosity, r, res)
		games = append(games, res.History)
	}
	if n := len(results); n < cfg.Simulation.Games {
		fmt.Fprintf(cfg.OutputFile, "Stopped after %d of %d games\n", n, cfg.Simulation.Games)
	}

	if save.file != "" {
		if err := saveGames(save.file, games, order); err != nil {
			return err
		}
	}
	if save.dir != "" {
		return saveEach(save.dir, games)
	}
	return nil
}

// reportGame writes a result line and, when verbose, the final board.
func reportGame(w io.Writer, verbosity int, r *render.Renderer, res worker.ProcessResult) {
	fmt.Fprintf(w, "%s (seed %d): %v after %d plies, %v, %v\n",
		res.History.Name, res.Seed, res.Reason, res.Plies, res.Outcome, res.Status)
	if verbosity < 1 {
		return
	}
	if last, ok := res.History.Last(); ok {
		fmt.Fprintf(w, "%s\n\n", r.Snapshot(last))
	}
}

// saveGames writes games to path as one library. The file always holds a
// readable library, even when no game is saved.
func saveGames(path string, games []*history.GameHistory, order output.SortOrder) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating save file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing save file: %w", cerr)
		}
	}()

	jw := output.NewJSONWriter(file, order)
	for _, h := range games {
		if err := jw.WriteGame(h); err != nil {
			return err
		}
	}
	return jw.Close()
}

// saveEach writes every game to its own <name>.json file in dir.
func saveEach(dir string, games []*history.GameHistory) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating save directory: %w", err)
	}
	for _, h := range games {
		if err := saveOne(filepath.Join(dir, filepath.Base(h.Name)+".json"), h); err != nil {
			return err
		}
	}
	return nil
}

func saveOne(path string, h *history.GameHistory) (err error) {
	file, err := os.Create(path) //nolint:gosec // G304: directory is provided by the user
	if err != nil {
		return fmt.Errorf("creating save file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing save file: %w", cerr)
		}
	}()
	return output.WriteGame(file, h)
}

// replayWriter picks how replayed games are written: the plain snapshot
// listing, or boards drawn by r.
func replayWriter(cfg *config.Config, r *render.Renderer, plainText bool) output.GameWriter {
	if plainText {
		return output.NewTextWriter(cfg.OutputFile, cfg)
	}
	return &boardWriter{w: cfg.OutputFile, r: r}
}

// boardWriter walks every state of a game with the replay cursor and
// draws each board.
type boardWriter struct {
	w io.Writer
	r *render.Renderer
}

func (bw *boardWriter) WriteGame(h *history.GameHistory) error {
	if _, err := fmt.Fprintf(bw.w, "== %s (saved %s) ==\n", h.Name, h.SaveDate.Format("2006-01-02 15:04")); err != nil {
		return err
	}
	replay := history.NewReplay(h.Clone())
	snap, err := replay.Current()
	for err == nil {
		if _, werr := fmt.Fprintf(bw.w, "%s\n\n", bw.r.Snapshot(snap)); werr != nil {
			return werr
		}
		snap, err = replay.Next()
	}
	return nil
}

func (bw *boardWriter) Flush() error { return nil }

func (bw *boardWriter) Close() error { return nil }

// replayFromFile loads a library or a single saved game and replays it.
func replayFromFile(gw output.GameWriter, path, name string, order output.SortOrder) error {
	file, err := os.Open(path) //nolint:gosec // G304: path is provided by the user
	if err != nil {
		return fmt.Errorf("opening save file: %w", err)
	}
	defer file.Close()

	games, err := output.ReadGames(file)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return replayGames(gw, games, name, order)
}

// replayGames writes the selected games, from the first state to the last.
func replayGames(gw output.GameWriter, games []*history.GameHistory, name string, order output.SortOrder) error {
	if name != "" {
		h, ok := output.FindGame(games, name)
		if !ok {
			return fmt.Errorf("no game named %q", name)
		}
		games = []*history.GameHistory{h}
	}
	output.SortGames(games, order)

	for _, h := range games {
		if err := gw.WriteGame(h); err != nil {
			return err
		}
	}
	return gw.Close()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays random games of chess, or replays saved ones.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCheckmate rules (-rule):\n")
	fmt.Fprintf(os.Stderr, "  full   In check with no legal move (default)\n")
	fmt.Fprintf(os.Stderr, "  king   In check and the king has no safe square\n")
}
