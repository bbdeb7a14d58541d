package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/eiannone/keyboard"

	"liftsim/src/config"
	"liftsim/src/display"
	"liftsim/src/elev"
	"liftsim/src/shell"
	"liftsim/src/types"
)

var errAborted = errors.New("aborted by user")

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	envFile := flag.String("env", ".env", "Path to an env file with LIFTSIM_* overrides")
	maintenanceFlag := flag.String("maintenance", "", "Comma separated floors under maintenance, skips the interactive selection")
	screen := flag.Bool("screen", false, "Redraw the whole elevator screen on every change")
	flag.Parse()

	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logCloser, err := elev.InitLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	view := display.New(os.Stdout, cfg.NumFloors, config.GroundFloor, *screen)
	events := elev.NewChanObserver(cfg.EventBuffer)
	go view.Run(ctx, events.Events)
	sh := shell.New(ctx, cfg, events)
	defer sh.Close()

	if *maintenanceFlag != "" {
		err = applyMaintenanceFlag(sh, *maintenanceFlag)
	} else {
		err = selectMaintenance(sh)
	}
	if err != nil {
		slog.Error("Maintenance selection failed", "err", err)
		return
	}

	runRequests(ctx, sh, cfg)
}

func applyMaintenanceFlag(sh *shell.Shell, floors string) error {
	for _, field := range strings.Split(floors, ",") {
		floor, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return fmt.Errorf("maintenance floor %q: %w", field, err)
		}
		if err := sh.ToggleMaintenanceFloor(types.Floor(floor)); err != nil {
			return err
		}
	}
	snapshot, err := sh.ConfirmMaintenance()
	if err != nil {
		return err
	}
	fmt.Printf("Floors under maintenance: %v\n", snapshot.OutOfService())
	return nil
}

// selectMaintenance toggles floors with single key presses until Enter confirms.
func selectMaintenance(sh *shell.Shell) error {
	if err := keyboard.Open(); err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	defer keyboard.Close()

	fmt.Printf("Select Floors Under Maintenance: press 1-%d to toggle, Enter to confirm\n", min(sh.NumFloors(), 9))
	for {
		char, key, err := keyboard.GetKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		switch {
		case key == keyboard.KeyEnter:
			snapshot, err := sh.ConfirmMaintenance()
			if err != nil {
				return err
			}
			fmt.Printf("Confirmed. Floors under maintenance: %v\n", snapshot.OutOfService())
			return nil
		case key == keyboard.KeyCtrlC || key == keyboard.KeyEsc:
			return errAborted
		case char >= '1' && char <= '9':
			if err := sh.ToggleMaintenanceFloor(types.Floor(char - '0')); err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Printf("Under maintenance: %v\n", sh.MaintenanceFloors())
		}
	}
}

// runRequests reads "from to" lines until stdin closes, the user quits or ctx is cancelled.
func runRequests(ctx context.Context, sh *shell.Shell, cfg config.Config) {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	printPrompt(sh)
	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				waitUntilStanding(ctx, sh, cfg.StepDuration)
				return
			}
			if !handleLine(sh, strings.TrimSpace(line)) {
				return
			}
		}
	}
}

// handleLine runs one command and reports whether to keep reading.
func handleLine(sh *shell.Shell, line string) bool {
	switch line {
	case "":
		return true
	case "quit", "exit":
		return false
	case "more":
		sh.RequestMoreRequests()
		printPrompt(sh)
		return true
	case "status":
		printStatus(sh)
		return true
	}

	fields := strings.Fields(line)
	if len(fields) != 2 {
		fmt.Println("Enter a request as: <from> <to>")
		return true
	}
	from, errFrom := strconv.Atoi(fields[0])
	to, errTo := strconv.Atoi(fields[1])
	if errFrom != nil || errTo != nil {
		fmt.Println("Please select valid and different floors")
		return true
	}
	if err := sh.SubmitRequest(types.Floor(from), types.Floor(to)); err != nil {
		fmt.Printf("Please select valid and different floors (%v)\n", err)
	}
	return true
}

func printPrompt(sh *shell.Shell) {
	fmt.Printf("Add Floor Request: <from> <to>, floors %v (more, status, quit)\n", sh.AvailableFloors())
}

func printStatus(sh *shell.Shell) {
	state, err := sh.Controller().State()
	if err != nil {
		fmt.Println(err)
		return
	}
	eta, err := sh.Controller().EstimateDrain()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Floor %d, %s, route %v, idle in %v\n",
		state.Floor, display.StatusText(state.Status, state.Door), state.Pending, eta)
}

func waitUntilStanding(ctx context.Context, sh *shell.Shell, poll time.Duration) {
	ticker := time.NewTicker(poll)
	defer ticker.Stop()
	for {
		state, err := sh.Controller().State()
		if err != nil || (state.Status == types.Standing && len(state.Pending) == 0) {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
