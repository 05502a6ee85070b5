package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/tidwall/pretty"

	"japanesegrammar/analyze"
)

var (
	grammarStyle = color.New(color.FgCyan, color.OpBold)
	wordStyle    = color.New(color.FgGreen)
	dimStyle     = color.New(color.FgGray)
)

func printJSON(w io.Writer, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(pretty.Pretty(b))
	return err
}

// highlight renders the sentence with every grouped span coloured.
func highlight(a analyze.Analysis) string {
	var sb strings.Builder
	for _, g := range a.Groups {
		if len(g.BlockIDs) == 0 {
			sb.WriteString(g.Text)
			continue
		}
		style := wordStyle
		for _, it := range g.Items {
			if it.Type == analyze.GrammarBlock {
				style = grammarStyle
				break
			}
		}
		sb.WriteString(style.Sprint(g.Text))
	}
	return sb.String()
}

func printAnalysis(w io.Writer, a analyze.Analysis) {
	fmt.Fprintln(w, highlight(a))
	for _, g := range a.Groups {
		if len(g.BlockIDs) == 0 {
			continue
		}
		fmt.Fprintf(w, "  %s %s\n", dimStyle.Sprintf("[%d-%d]", g.Start, g.End), g.Text)
		for _, it := range g.Items {
			switch it.Type {
			case analyze.GrammarBlock:
				fmt.Fprintf(w, "    %s %s\n", grammarStyle.Sprint(it.Text), it.Meaning)
			default:
				line := wordStyle.Sprint(it.DictForm)
				if it.Reading != "" {
					line += " (" + it.Reading + ")"
				}
				if len(it.Tenses) > 0 {
					line += " " + strings.Join(it.Tenses, ", ")
				}
				if len(it.Senses) > 0 && len(it.Senses[0].Glosses) > 0 {
					line += dimStyle.Sprint(" : " + strings.Join(it.Senses[0].Glosses, "; "))
				}
				fmt.Fprintf(w, "    %s\n", line)
			}
		}
	}
}
