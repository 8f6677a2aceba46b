// Command sokosolve solves Sokoban puzzles push-optimally, or generates
// random puzzle collections for benchmarking the solver.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/cbrgm/sokosolve/genlevel"
	"github.com/cbrgm/sokosolve/puzzle"
	"github.com/cbrgm/sokosolve/render"
	"github.com/cbrgm/sokosolve/sokoban"
)

func main() {
	top := flag.NewFlagSet("sokosolve", flag.ContinueOnError)
	silent := top.Bool("silent", false, "emit one CSV line per puzzle instead of verbose output")
	top.Usage = usage
	if err := top.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	args := top.Args()
	if len(args) < 1 {
		usage()
		os.Exit(1)
	}

	var err error
	switch args[0] {
	case "solve":
		err = runSolve(args[1:], *silent)
	case "puzzle-gen":
		err = runPuzzleGen(args[1:])
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: sokosolve [--silent] solve <path> [flags]")
	fmt.Fprintln(os.Stderr, "       sokosolve [--silent] puzzle-gen <name> <W> <H> <batch> <goals> <walls>")
}

func runSolve(args []string, silent bool) error {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	closestBox := fs.Bool("closest-box", false, "use the closest-box heuristic")
	goalCount := fs.Bool("goal-count", false, "use the goal-count heuristic")
	greedyMatch := fs.Bool("greedy-perfect-match", false, "use the greedy-perfect-match heuristic")
	deadlockHashing := fs.Bool("deadlock-hashing", false, "memoize dead states across the search")
	profile := fs.Bool("profile", false, "write a CPU profile alongside each solve")
	budget := fs.Duration("budget", sokoban.DefaultTimeBudget, "wall-clock budget per puzzle")
	renderOut := fs.String("render", "", "write a PNG of each solved puzzle's starting grid, captioned with its push and move counts, to this directory (the end position is not drawn)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("sokosolve: solve requires exactly one puzzle path")
	}

	heuristic, err := pickHeuristic(*closestBox, *goalCount, *greedyMatch)
	if err != nil {
		return err
	}

	path := fs.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("sokosolve: %w", err)
	}

	var grids []*sokoban.Grid
	if strings.EqualFold(filepath.Ext(path), ".sok") {
		grids, err = puzzle.ParseCollection(string(data))
	} else {
		var grid *sokoban.Grid
		grid, err = puzzle.Parse(string(data))
		grids = []*sokoban.Grid{grid}
	}
	if err != nil {
		return fmt.Errorf("sokosolve: %w", err)
	}

	for i, grid := range grids {
		if err := solveOne(grid, i, heuristic, *deadlockHashing, *profile, silent, *budget, *renderOut); err != nil {
			return err
		}
	}
	return nil
}

func pickHeuristic(closestBox, goalCount, greedyMatch bool) (sokoban.Heuristic, error) {
	chosen := 0
	h := sokoban.ClosestBox
	if closestBox {
		chosen++
		h = sokoban.ClosestBox
	}
	if goalCount {
		chosen++
		h = sokoban.GoalCount
	}
	if greedyMatch {
		chosen++
		h = sokoban.GreedyPerfectMatch
	}
	if chosen != 1 {
		return h, fmt.Errorf("sokosolve: exactly one of --closest-box, --goal-count, --greedy-perfect-match is required")
	}
	return h, nil
}

func solveOne(grid *sokoban.Grid, index int, heuristic sokoban.Heuristic, deadlockHashing, profile, silent bool, budget time.Duration, renderDir string) error {
	solver, err := sokoban.NewSolver(grid, heuristic, deadlockHashing)
	if err != nil {
		return fmt.Errorf("sokosolve: %w", err)
	}

	if profile {
		profPath := "flamegraph.svg"
		if index > 0 {
			profPath = fmt.Sprintf("flamegraph%d.svg", index+1)
		}
		f, err := os.Create(profPath)
		if err != nil {
			return fmt.Errorf("sokosolve: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("sokosolve: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	report := solver.Solve(budget)

	if silent {
		fmt.Println(report.CSVLine())
	} else {
		report.WriteVerbose(os.Stdout)
	}

	if renderDir != "" && report.Outcome == sokoban.Solved {
		if err := os.MkdirAll(renderDir, 0o755); err != nil {
			return fmt.Errorf("sokosolve: %w", err)
		}
		out, err := os.Create(filepath.Join(renderDir, fmt.Sprintf("puzzle%d.png", index+1)))
		if err != nil {
			return fmt.Errorf("sokosolve: %w", err)
		}
		defer out.Close()
		caption := fmt.Sprintf("%d pushes, %d moves", report.Pushes, len(sokoban.ParseActions(report.Moves)))
		if err := render.WritePNG(out, grid, caption); err != nil {
			return fmt.Errorf("sokosolve: %w", err)
		}
	}
	return nil
}

func runPuzzleGen(args []string) error {
	if len(args) != 6 {
		return fmt.Errorf("sokosolve: puzzle-gen requires <name> <W> <H> <batch> <goals> <walls>")
	}
	width, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("sokosolve: invalid width: %w", err)
	}
	height, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("sokosolve: invalid height: %w", err)
	}
	batch, err := strconv.Atoi(args[3])
	if err != nil {
		return fmt.Errorf("sokosolve: invalid batch: %w", err)
	}
	goals, err := strconv.Atoi(args[4])
	if err != nil {
		return fmt.Errorf("sokosolve: invalid goal count: %w", err)
	}
	walls, err := strconv.Atoi(args[5])
	if err != nil {
		return fmt.Errorf("sokosolve: invalid wall count: %w", err)
	}

	opts := genlevel.Options{
		Name:   args[0],
		Width:  width,
		Height: height,
		Batch:  batch,
		Goals:  goals,
		Walls:  walls,
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("sokosolve: %w", err)
	}

	text, err := genlevel.Generate(rand.New(rand.NewSource(time.Now().UnixNano())), opts)
	if err != nil {
		return fmt.Errorf("sokosolve: %w", err)
	}

	outPath := opts.Name + ".sok"
	if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("sokosolve: %w", err)
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}
