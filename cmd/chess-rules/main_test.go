package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/render"
)

// testConfig returns a configuration that plays short games and writes
// its report to out.
func testConfig(out *bytes.Buffer, n int) *config.Config {
	return config.NewConfigBuilder().
		WithSeed(3).
		WithGames(n).
		WithWorkers(2).
		WithMaxPlies(12).
		WithGameName("cli").
		WithOutput(out).
		WithLog(&bytes.Buffer{}).
		WithVerbosity(1).
		Build()
}

func TestSimulate_ReportsEveryGame(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(&out, 3)

	if err := simulate(cfg, render.New(termenv.Ascii), saveTargets{}, output.Unsorted); err != nil {
		t.Fatalf("simulate() error: %v", err)
	}

	report := out.String()
	for _, want := range []string{"cli-1 (seed 3)", "cli-2 (seed 4)", "cli-3 (seed 5)", "ply limit after 12 plies", "Turn:12"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestSimulate_SaveThenReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.json")

	var out bytes.Buffer
	cfg := testConfig(&out, 2)
	cfg.Verbosity = 0
	if err := simulate(cfg, render.New(termenv.Ascii), saveTargets{file: path}, output.ByName); err != nil {
		t.Fatalf("simulate() error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("save file not written: %v", err)
	}

	var replay bytes.Buffer
	cfg.OutputFile = &replay
	gw := replayWriter(cfg, render.New(termenv.Ascii), false)
	if err := replayFromFile(gw, path, "cli-2", output.Unsorted); err != nil {
		t.Fatalf("replayFromFile() error: %v", err)
	}

	got := replay.String()
	if !strings.HasPrefix(got, "== cli-2 (saved ") {
		t.Errorf("replay header = %q", strings.SplitN(got, "\n", 2)[0])
	}
	if strings.Contains(got, "cli-1") {
		t.Error("replay included a game that was not selected")
	}
	// 12 plies plus the starting state.
	if n := strings.Count(got, "Turn:"); n != 13 {
		t.Errorf("replayed %d states; want 13", n)
	}
	if !strings.Contains(got, "Turn:0 Game start!") {
		t.Error("replay does not start at the initial state")
	}
}

func TestReplayFromFile_Errors(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	cfg := testConfig(&out, 1)
	gw := replayWriter(cfg, render.New(termenv.Ascii), false)

	if err := replayFromFile(gw, filepath.Join(dir, "missing.json"), "", output.Unsorted); err == nil {
		t.Error("replaying a missing file succeeded")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := replayFromFile(gw, bad, "", output.Unsorted); err == nil {
		t.Error("replaying a corrupt file succeeded")
	}

	empty := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(empty, []byte(`{"games": []}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := replayFromFile(gw, empty, "nobody", output.Unsorted); err == nil {
		t.Error("replaying an unknown game name succeeded")
	}
}

func TestReplay_PlainListsSnapshots(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.json")
	var out bytes.Buffer
	cfg := testConfig(&out, 2)
	if err := simulate(cfg, render.New(termenv.Ascii), saveTargets{file: path}, output.Unsorted); err != nil {
		t.Fatalf("simulate() error: %v", err)
	}

	var replay bytes.Buffer
	cfg.OutputFile = &replay
	if err := replayFromFile(replayWriter(cfg, nil, true), path, "cli-1", output.Unsorted); err != nil {
		t.Fatalf("replayFromFile() error: %v", err)
	}

	got := replay.String()
	if !strings.HasPrefix(got, "Game cli-1 (13 states)\n") {
		t.Errorf("plain replay header = %q", strings.SplitN(got, "\n", 2)[0])
	}
	if n := strings.Count(got, "Turn:"); n != 13 {
		t.Errorf("replayed %d states; want 13", n)
	}
}

func TestSimulate_SaveDirThenReplayOne(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "each")
	var out bytes.Buffer
	cfg := testConfig(&out, 2)
	cfg.Verbosity = 0
	if err := simulate(cfg, render.New(termenv.Ascii), saveTargets{dir: dir}, output.Unsorted); err != nil {
		t.Fatalf("simulate() error: %v", err)
	}

	for _, name := range []string{"cli-1", "cli-2"} {
		path := filepath.Join(dir, name+".json")
		var replay bytes.Buffer
		cfg.OutputFile = &replay
		if err := replayFromFile(replayWriter(cfg, render.New(termenv.Ascii), false), path, "", output.Unsorted); err != nil {
			t.Fatalf("replayFromFile(%s) error: %v", name, err)
		}
		if !strings.HasPrefix(replay.String(), "== "+name+" (saved ") {
			t.Errorf("%s replay header = %q", name, strings.SplitN(replay.String(), "\n", 2)[0])
		}
	}
}

func TestSaveGames_NoGamesIsReadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.json")
	if err := saveGames(path, nil, output.Unsorted); err != nil {
		t.Fatalf("saveGames() error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	games, err := output.ReadGames(f)
	if err != nil {
		t.Fatalf("ReadGames() error: %v", err)
	}
	if len(games) != 0 {
		t.Errorf("len(games) = %d; want 0", len(games))
	}

	var out bytes.Buffer
	cfg := testConfig(&out, 1)
	if err := replayFromFile(replayWriter(cfg, nil, true), path, "", output.Unsorted); err != nil {
		t.Errorf("replaying an empty save failed: %v", err)
	}
}

func TestSaveGames_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "games.json")
	if err := saveGames(path, nil, output.Unsorted); err == nil {
		t.Error("saving into a missing directory succeeded")
	}
}
