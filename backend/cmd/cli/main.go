package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/havenbridge/crisis-sentinel/backend/internal/analyzer"
	"github.com/havenbridge/crisis-sentinel/backend/internal/assessor"
	"github.com/havenbridge/crisis-sentinel/backend/internal/config"
	"github.com/havenbridge/crisis-sentinel/backend/internal/history"
	"github.com/havenbridge/crisis-sentinel/backend/internal/intervention"
	"github.com/havenbridge/crisis-sentinel/backend/internal/lexicon"
	"github.com/havenbridge/crisis-sentinel/backend/internal/risk"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

func levelColor(l risk.Level) string {
	switch {
	case l >= risk.High:
		return colorRed
	case l == risk.Medium:
		return colorYellow
	default:
		return colorGreen
	}
}

func main() {
	godotenv.Load()

	fmt.Println(colorCyan + colorBold + `
╔═══════════════════════════════════════════════════════════╗
║          CRISIS SENTINEL - Interactive CLI                ║
║          Each line is assessed as one session message     ║
║          Type 'exit' or 'quit' to exit                    ║
╚═══════════════════════════════════════════════════════════╝` + colorReset)
	fmt.Println()

	logger := log.New(os.Stderr, "[sentinel] ", log.LstdFlags)
	cfg := config.Load()

	lex, err := lexicon.NewLoader(cfg.Lexicon.Directory, logger).Load()
	if err != nil {
		fmt.Printf("%sError: failed to load lexicon: %v%s\n", colorRed, err, colorReset)
		os.Exit(1)
	}

	matcher, err := analyzer.NewMatcher(lex)
	if err != nil {
		fmt.Printf("%sError: failed to compile matcher: %v%s\n", colorRed, err, colorReset)
		os.Exit(1)
	}
	modifiers, err := analyzer.NewModifierDetector(lex)
	if err != nil {
		fmt.Printf("%sError: failed to compile modifier detector: %v%s\n", colorRed, err, colorReset)
		os.Exit(1)
	}
	emotion, err := analyzer.NewEmotionClassifier(lex)
	if err != nil {
		fmt.Printf("%sError: failed to compile emotion classifier: %v%s\n", colorRed, err, colorReset)
		os.Exit(1)
	}
	negator := analyzer.NewNegationResolver(lex, cfg.Assessor.NegationWindow)

	riskAssessor := assessor.New(matcher, negator, modifiers, assessor.Config{
		TrendWindow:     cfg.Assessor.TrendWindow,
		MaxMessageBytes: cfg.Assessor.MaxMessageBytes,
	}, logger)

	store := history.NewMemoryStore()
	const sessionID = "cli-session"

	fmt.Printf("%s[✓] Lexicon loaded (version %s)%s\n", colorGreen, lex.Version, colorReset)
	fmt.Printf("    Categories: %d, modifier families: %d\n", len(lex.Categories), len(lex.Modifiers))
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("%s%s> %s", colorBold, colorBlue, colorReset)

		if !scanner.Scan() {
			break
		}

		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}
		if message == "exit" || message == "quit" {
			break
		}

		state := emotion.Classify(message)
		store.Append(sessionID, state)

		result := riskAssessor.Assess(message, sessionID, history.SessionView{Store: store, SessionID: sessionID})
		tier := intervention.Select(result)

		c := levelColor(result.Level)
		fmt.Printf("  %sRISK: %s%s\n", c+colorBold, strings.ToUpper(result.Level.String()), colorReset)
		fmt.Printf("  Emotion:      %s (intensity %.2f)\n", state.Label, state.Intensity)
		if len(result.Categories) > 0 {
			fmt.Printf("  Categories:   %s\n", strings.Join(result.Categories, ", "))
		}
		if len(result.Modifiers) > 0 {
			fmt.Printf("  Modifiers:    %s\n", strings.Join(result.Modifiers, ", "))
		}
		if result.TrendEscalated {
			fmt.Printf("  %sTrend:        sustained emotional worsening%s\n", colorYellow, colorReset)
		}
		fmt.Printf("  Intervention: %s\n", tier)
		fmt.Printf("  Rationale:    %s\n", result.Rationale)
		fmt.Println()
	}
}
