package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/ryansname/battcheck/src/battery"
	"github.com/ryansname/battcheck/src/locale"
	"github.com/ryansname/battcheck/src/report"
)

// Console is the interactive front end: it parses commands and owns the reporter
type Console struct {
	out      io.Writer
	reporter *report.Reporter
}

// NewConsole creates a console writing reports and command output to out
func NewConsole(out io.Writer, resolver *locale.Resolver, lang locale.Language) *Console {
	reporter := report.NewReporter(out, resolver)
	reporter.SetLanguage(lang)
	return &Console{out: out, reporter: reporter}
}

// print outputs a single line
func (c *Console) print(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format+"\n", args...)
}

// Self-check readings: the first is healthy, the second is out of range
var demoReadings = []battery.Reading{
	{Temperature: 25, StateOfCharge: 70, ChargeRate: 0.7},
	{Temperature: 50, StateOfCharge: 85, ChargeRate: 0},
}

// parseReading parses "<temperature> <soc> <charge-rate>" arguments
func parseReading(args []string) (battery.Reading, error) {
	if len(args) != 3 {
		return battery.Reading{}, fmt.Errorf("expected <temperature> <soc> <charge-rate>, got %d values", len(args))
	}

	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return battery.Reading{}, fmt.Errorf("invalid %s %q", battery.Parameters[i], arg)
		}
		values[i] = v
	}

	return battery.Reading{
		Temperature:   values[0],
		StateOfCharge: values[1],
		ChargeRate:    values[2],
	}, nil
}

// check reports the reading in the current language
func (c *Console) check(reading battery.Reading) error {
	if err := c.reporter.Report(reading); err != nil {
		return err
	}
	if reading.OK() {
		log.Println("All readings ok")
	}
	return nil
}

// status prints every parameter with its value, bounds and classification
func (c *Console) status(reading battery.Reading) {
	for _, result := range battery.Check(reading) {
		bounds := result.Parameter.Bounds()
		c.print("%-16s %8.2f  [%g, %g]  %s",
			result.Parameter, result.Value, bounds.Min, bounds.Max, result.Status)
	}
}

// demo replays the self-check readings in every language, then restores the current one
func (c *Console) demo() error {
	current := c.reporter.Language()
	defer c.reporter.SetLanguage(current)

	for _, lang := range locale.Languages {
		c.reporter.SetLanguage(lang)
		c.print("[%s]", lang)
		for _, reading := range demoReadings {
			if err := c.reporter.Report(reading); err != nil {
				return err
			}
		}
	}

	log.Printf("Self-check: healthy=%v faulty=%v\n",
		demoReadings[0].OK(), demoReadings[1].OK())
	return nil
}

// handleCommand processes one console command and reports whether the console should exit
func handleCommand(cmd string, c *Console) bool {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return false
	}

	switch parts[0] {
	case "check":
		reading, err := parseReading(parts[1:])
		if err != nil {
			log.Printf("Error: %v", err)
			return false
		}
		if err := c.check(reading); err != nil {
			log.Printf("Error: %v", err)
		}

	case "status":
		reading, err := parseReading(parts[1:])
		if err != nil {
			log.Printf("Error: %v", err)
			return false
		}
		c.status(reading)

	case "lang":
		if len(parts) < 2 {
			c.print("%s", c.reporter.Language())
			return false
		}
		lang, err := locale.ParseLanguage(parts[1])
		if err != nil {
			log.Printf("Error: %v", err)
			return false
		}
		c.reporter.SetLanguage(lang)
		log.Printf("Language set to %s", lang)

	case "demo":
		if err := c.demo(); err != nil {
			log.Printf("Error: %v", err)
		}

	case "help":
		c.print("Commands:")
		c.print("  check <temperature> <soc> <charge-rate>   - Print warnings for a reading")
		c.print("  status <temperature> <soc> <charge-rate>  - Show classification of each parameter")
		c.print("  lang [en|de]                              - Show or set message language")
		c.print("  demo                                      - Run the built-in self-check readings")
		c.print("  help                                      - Show this help")
		c.print("  quit                                      - Exit")

	case "quit", "exit":
		return true

	default:
		log.Printf("Unknown command: %s (try 'help')", parts[0])
	}
	return false
}

// readlineLoop reads commands until quit, Ctrl+C or end of input
func readlineLoop(rl *readline.Instance, c *Console) error {
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if handleCommand(strings.TrimSpace(line), c) {
			return nil
		}
	}
}

// runConsole starts the interactive console on the terminal
func runConsole(cfg Config, resolver *locale.Resolver) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: cfg.Prompt,
	})
	if err != nil {
		return fmt.Errorf("readline init failed: %w", err)
	}
	defer func() {
		_ = rl.Close()
	}()

	// Keep log output from clobbering the prompt
	log.SetOutput(rl.Stderr())

	c := NewConsole(rl.Stdout(), resolver, cfg.Language)
	log.Printf("Console started in %s (type 'help' for commands)", cfg.Language)

	return readlineLoop(rl, c)
}
