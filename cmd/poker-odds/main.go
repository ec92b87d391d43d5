// Command poker-odds is a one-shot CLI over internal/eval, internal/calc
// and internal/stats: it ranks hands, estimates equity, and prints the
// hand-type occurrence tables. It owns CLI parsing, config loading and
// presentation only — every number it prints comes straight from the
// library packages.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokerfast/internal/calc"
	"github.com/lox/pokerfast/internal/config"
	"github.com/lox/pokerfast/internal/deck"
	"github.com/lox/pokerfast/internal/eval"
	"github.com/lox/pokerfast/internal/keys"
	"github.com/lox/pokerfast/internal/stats"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	handStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	winStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	tieStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	rankStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// runCtx is shared state built once in main and handed to every
// subcommand via kong's Run(rc *runCtx) binding, so the evaluator
// tables are built exactly once per process no matter which subcommand
// runs.
type runCtx struct {
	table  *eval.TableSeven
	config *config.CLIConfig
	logger *log.Logger
}

// statCategoryOrder names the nine hand categories in increasing
// strength order, matching eval.TableFive.HandType's rank ordering.
var statCategoryOrder = []string{
	"high-card", "one-pair", "two-pairs", "three-of-a-kind", "straight",
	"flush", "full-house", "four-of-a-kind", "straight-flush",
}

type CLI struct {
	Rank   RankCmd   `cmd:"" help:"Print the rank and category of one or more 5- or 7-card hands."`
	Equity EquityCmd `cmd:"" help:"Estimate each player's win/tie equity."`
	Stats  StatsCmd  `cmd:"" help:"Print the hand-type occurrence table."`
}

type RankCmd struct {
	Hands []string `arg:"" help:"One or more 5- or 7-card hands, e.g. 'AcKdQhJsTc'."`
}

type rankResult struct {
	Hand     string `json:"hand"`
	Rank     uint32 `json:"rank"`
	Category string `json:"category"`
}

func (c *RankCmd) Run(rc *runCtx) error {
	results := make([]rankResult, 0, len(c.Hands))

	for _, handStr := range c.Hands {
		cards, err := deck.ParseCards(strings.ReplaceAll(handStr, " ", ""))
		if err != nil {
			return fmt.Errorf("hand %q: %w", handStr, err)
		}

		var rank uint32
		switch len(cards) {
		case 5:
			rank = eval.Rank5(rc.table.Five, [5]deck.Card(cards))
		case 7:
			rank = eval.Rank7(rc.table, [7]deck.Card(cards))
		default:
			return fmt.Errorf("hand %q: want 5 or 7 cards, got %d", handStr, len(cards))
		}

		results = append(results, rankResult{Hand: formatCards(cards), Rank: rank, Category: rc.table.Five.Category(rank)})
	}

	if rc.config.OutputFormat == "json" {
		return writeJSON(results)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n", headerStyle.Render("hand"), headerStyle.Render("rank"), headerStyle.Render("category"))
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\n", handStyle.Render(r.Hand), rankStyle.Render(fmt.Sprintf("%d", r.Rank)), r.Category)
	}
	return w.Flush()
}

type EquityCmd struct {
	Hands   []string `arg:"" help:"One 2-card hand per player, e.g. 'AcKd' 'QhJs'."`
	Board   string   `short:"b" help:"Known community cards (0, 3, 4 or 5 cards)."`
	Samples int      `short:"s" default:"${defaultSamples}" help:"Monte Carlo samples; 0 computes exact equity by enumeration."`
	Verbose bool     `short:"v" help:"Log elapsed time and game count (exact enumeration only)."`
}

type equityResult struct {
	Hand string  `json:"hand"`
	Win  float64 `json:"win"`
	Tie  float64 `json:"tie"`
}

func (c *EquityCmd) Run(rc *runCtx) error {
	hands, err := parseHands(c.Hands)
	if err != nil {
		return err
	}

	var board []deck.Card
	if c.Board != "" {
		board, err = deck.ParseCards(c.Board)
		if err != nil {
			return fmt.Errorf("board: %w", err)
		}
	}

	var equities []calc.HandEquity
	if c.Samples == 0 {
		players := make([][2]deck.Card, len(hands))
		for i, h := range hands {
			players[i] = [2]deck.Card{h[0], h[1]}
		}
		equities, err = calc.Deterministic(rc.table, players, board, c.Verbose)
		if err != nil {
			return err
		}
	} else {
		mc, err := calc.MonteCarlo(rc.table, hands, board, c.Samples)
		if err != nil {
			return err
		}
		equities = make([]calc.HandEquity, len(hands))
		equities[0] = mc
	}

	results := make([]equityResult, len(hands))
	for i, h := range hands {
		results[i] = equityResult{Hand: formatCards(h), Win: equities[i].Win, Tie: equities[i].Tie}
	}

	if rc.config.OutputFormat == "json" {
		return writeJSON(results)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n", headerStyle.Render("hand"), headerStyle.Render("win"), headerStyle.Render("tie"))
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			handStyle.Render(r.Hand),
			winStyle.Render(fmt.Sprintf("%.2f%%", r.Win*100)),
			tieStyle.Render(fmt.Sprintf("%.2f%%", r.Tie*100)))
	}
	return w.Flush()
}

type StatsCmd struct {
	Which string `arg:"" enum:"five,seven" help:"Which table to summarize: five or seven."`
}

type statResult struct {
	Category string `json:"category"`
	NbHand   uint32 `json:"nb_hand"`
	MinRank  uint32 `json:"min_rank"`
	MaxRank  uint32 `json:"max_rank"`
	NbOccur  uint32 `json:"nb_occur"`
}

func (c *StatsCmd) Run(rc *runCtx) error {
	var table map[string]stats.HandStats
	if c.Which == "five" {
		table = stats.Five(rc.table.Five)
	} else {
		table = stats.Seven(rc.table)
	}

	results := make([]statResult, len(statCategoryOrder))
	for i, category := range statCategoryOrder {
		hs := table[category]
		results[i] = statResult{Category: category, NbHand: hs.NbHand, MinRank: hs.MinRank, MaxRank: hs.MaxRank, NbOccur: hs.NbOccur}
	}

	if rc.config.OutputFormat == "json" {
		return writeJSON(results)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("category"), headerStyle.Render("nb_hand"),
		headerStyle.Render("min_rank"), headerStyle.Render("max_rank"), headerStyle.Render("nb_occur"))
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n", handStyle.Render(r.Category), r.NbHand, r.MinRank, r.MaxRank, r.NbOccur)
	}
	return w.Flush()
}

// writeJSON encodes v as indented JSON to stdout, used by every subcommand
// when CLIConfig.OutputFormat is "json".
func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.InfoLevel})

	// Config is loaded before kong.Parse so its default_samples value can
	// seed the equity subcommand's --samples flag default.
	cfg, cfgErr := config.Load(".poker-odds.hcl")
	defaultSamples := config.DefaultCLIConfig().DefaultSamples
	if cfgErr == nil {
		defaultSamples = cfg.DefaultSamples
		cfgErr = cfg.Validate()
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("poker-odds"),
		kong.Description("Texas Hold'em hand ranking and equity calculator"),
		kong.UsageOnError(),
		kong.Vars{"defaultSamples": strconv.Itoa(defaultSamples)},
	)
	ctx.FatalIfErrorf(cfgErr)

	calc.Workers = cfg.Workers
	stats.Workers = cfg.Workers

	start := time.Now()
	t5 := eval.BuildFive(keys.Build())
	t7 := eval.BuildSeven(t5, quartz.NewReal(), logger)
	logger.Debug("poker-odds: built tables", "elapsed", time.Since(start))

	err := ctx.Run(&runCtx{table: t7, config: cfg, logger: logger})
	ctx.FatalIfErrorf(err)
}

func parseHands(handStrings []string) ([][]deck.Card, error) {
	hands := make([][]deck.Card, 0, len(handStrings))
	for i, handStr := range handStrings {
		hand, err := deck.ParseCards(strings.ReplaceAll(strings.TrimSpace(handStr), " ", ""))
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		if len(hand) != 2 {
			return nil, fmt.Errorf("hand %d: must contain exactly 2 cards, got %d", i+1, len(hand))
		}
		hands = append(hands, hand)
	}
	return hands, nil
}

func formatCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
