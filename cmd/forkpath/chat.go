package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/forkpath-dev/forkpath"
	"github.com/forkpath-dev/forkpath/internal/presentation/tui"
	"github.com/forkpath-dev/forkpath/pkg/domain"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Run an interactive conversation in the terminal",
	Long:  `Walks through the question tree interactively and prints the final summary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		graphPath, _ := cmd.Flags().GetString("graph")

		engine, err := buildEngine(graphPath, nil)
		if err != nil {
			return fmt.Errorf("initializing forkpath: %w", err)
		}

		interactive := term.IsTerminal(int(os.Stdin.Fd()))
		if interactive {
			tui.PrintBanner(forkpath.Version)
		}

		return runChat(cmd, engine, interactive)
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, engine *forkpath.Engine, interactive bool) error {
	ctx := cmd.Context()
	render := tui.NewRenderer()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	show := func(markdown string) {
		if out, err := render(markdown); err == nil && interactive {
			fmt.Fprint(cmd.OutOrStdout(), out)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), markdown)
		}
	}

	transcript := domain.Transcript{}
	input := ""

	for {
		res, err := engine.Advance(ctx, input, transcript)
		if err != nil {
			var invalid *domain.InvalidAnswerError
			if errors.As(err, &invalid) {
				show(fmt.Sprintf("**%s** is not an option. Choose from: %s",
					invalid.Input, strings.Join(invalid.Options, ", ")))
				input = readAnswer(scanner)
				if input == "" {
					return nil // EOF
				}
				continue
			}
			return err
		}

		transcript = res.Transcript

		if res.Complete {
			show(tui.SummaryMarkdown(res.Summary))
			return nil
		}

		show(tui.QuestionMarkdown(*res.Question))

		answer := readAnswer(scanner)
		if answer == "" {
			return nil // EOF or blank line: abandon the conversation
		}
		// Let "2" select the second option.
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(res.Question.Options) {
			answer = res.Question.Options[n-1]
		}
		input = answer
	}
}

func readAnswer(scanner *bufio.Scanner) string {
	fmt.Print("> ")
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}
