package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fixedstr/core/logger"
	"github.com/dmitrymomot/fixedstr/internal/query"
)

var (
	label   = color.New(color.FgCyan).SprintFunc()
	hit     = color.New(color.FgGreen, color.Bold).SprintFunc()
	miss    = color.New(color.FgYellow).SprintFunc()
	literal = color.New(color.FgWhite).SprintFunc()
)

func newQueryCmd(a *app) *cobra.Command {
	var (
		pos    int
		asJSON bool
	)

	ops := make([]string, len(query.Ops))
	for i, op := range query.Ops {
		ops[i] = string(op)
	}

	cmd := &cobra.Command{
		Use:   "query <text> <op> <needle>",
		Short: "Run a search or comparison on a fixed string",
		Long: `Query loads text into a fixed string of up to 99 bytes and applies one
operation to it. Searches start at --pos, which defaults to the start for
forward searches and the end for backward ones. Text and needle may not
contain NUL bytes, since NUL terminates a fixed string.

Operations: ` + strings.Join(ops, ", ") + `

Example:
  fixedstr query hello find ll
  fixedstr query hello rfind l --pos 2 --json`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := query.ParseOp(args[1])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("pos") {
				pos = op.DefaultPos()
			}

			res, err := query.Run(op, args[0], args[2], pos)
			if err != nil {
				return err
			}
			a.log.Debug("query evaluated", logger.Op(string(op)), logger.Result(describe(res)))

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			return printResult(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().IntVar(&pos, "pos", 0, "start position of the search")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func describe(res query.Result) string {
	switch res.Kind {
	case query.KindBool:
		return strconv.FormatBool(res.Match)
	case query.KindOrder:
		return strconv.Itoa(res.Order)
	default:
		if !res.Found() {
			return "npos"
		}
		return strconv.Itoa(res.Index)
	}
}

func printResult(w io.Writer, res query.Result) error {
	value := describe(res)
	switch {
	case res.Kind == query.KindIndex && !res.Found(), res.Kind == query.KindBool && !res.Match:
		value = miss(value)
	default:
		value = hit(value)
	}

	_, err := fmt.Fprintf(w, "%s %s %s: %s\n",
		label(string(res.Op)),
		literal(strconv.Quote(res.Text)),
		literal(strconv.Quote(res.Needle)),
		value,
	)
	return err
}
