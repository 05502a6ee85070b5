package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"japanesegrammar/analyze"
	"japanesegrammar/conjugate"
	"japanesegrammar/ingest"
)

func newAnalyzeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [text...]",
		Short: "Match grammar rules and conjugations in Japanese text (stdin when no args)",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, "\n")
			if len(args) == 0 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(b)
			}
			sentences := ingest.Split(text)
			if len(sentences) == 0 {
				return ingest.ErrEmptySentence
			}
			a, err := newAnalyzer(cmd.Context(), opts.cfg)
			if err != nil {
				return err
			}
			results := a.AnalyzeAll(cmd.Context(), sentences)

			w := cmd.OutOrStdout()
			if opts.OutputFormat == outputJSON {
				return printJSON(w, toJSONResults(results))
			}
			for _, r := range results {
				if r.Err != nil {
					fmt.Fprintf(w, "%s\n  %s\n", r.Analysis.Text, r.Err)
					continue
				}
				printAnalysis(w, r.Analysis)
			}
			return nil
		},
	}
}

type jsonResult struct {
	analyze.Analysis
	Error string `json:"error,omitempty"`
}

func toJSONResults(results []analyze.Result) []jsonResult {
	out := make([]jsonResult, len(results))
	for i, r := range results {
		out[i] = jsonResult{Analysis: r.Analysis}
		if r.Err != nil {
			out[i].Error = r.Err.Error()
		}
	}
	return out
}

func newConjugateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "conjugate <verb>",
		Short: "Print the conjugation table of a dictionary-form verb",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl := conjugate.Conjugate(strings.TrimSpace(args[0]))
			w := cmd.OutOrStdout()
			if opts.OutputFormat == outputJSON {
				return printJSON(w, tbl)
			}
			fmt.Fprintf(w, "%s (%s)\n", tbl.DictionaryForm, tbl.Class)
			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			for _, f := range tbl.Forms {
				fmt.Fprintf(tw, "%s\t%s\n", f.Label, f.Surface)
			}
			return tw.Flush()
		},
	}
}

func newDetectCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "detect <verb> <surface>",
		Short: "List the tenses of verb whose surface equals the given form",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			labels := conjugate.Labels(conjugate.Detect(args[0], args[1]))
			w := cmd.OutOrStdout()
			if opts.OutputFormat == outputJSON {
				return printJSON(w, labels)
			}
			if len(labels) == 0 {
				fmt.Fprintln(w, "no matching tense")
				return nil
			}
			for _, l := range labels {
				fmt.Fprintln(w, l)
			}
			return nil
		},
	}
}

func newClassifyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <verb>...",
		Short: "Print the inflection class of each dictionary-form verb",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			classes := make(map[string]conjugate.VerbClass, len(args))
			for _, v := range args {
				classes[v] = conjugate.Classify(v)
			}
			w := cmd.OutOrStdout()
			if opts.OutputFormat == outputJSON {
				return printJSON(w, classes)
			}
			for _, v := range args {
				fmt.Fprintf(w, "%s\t%s\n", v, classes[v])
			}
			return nil
		},
	}
}

func newRulesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Compile the configured rules and list them",
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := newTokenizer(opts.cfg)
			if err != nil {
				return err
			}
			rules, err := compileRules(cmd.Context(), opts.cfg, tok)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if opts.OutputFormat == outputJSON {
				return printJSON(w, rules)
			}
			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			for _, r := range rules {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d variations\n", r.ID, r.OriginalText, r.Meaning, len(r.Variations))
			}
			return tw.Flush()
		},
	}
}
