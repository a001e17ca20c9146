package regdump

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/buildkite/shellwords"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var errNestedBatch = errors.New("batch can't be nested")

// parseScript returns the command lines of a batch script. Empty lines and
// lines starting with # are skipped, the others split by shell quoting
// rules.
func parseScript(script string) (lines [][]string, err error) {
	sc := bufio.NewScanner(strings.NewReader(script))
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args, err := shellwords.Split(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		if len(args) > 0 && args[0] == "regdump" {
			args = args[1:]
		}
		if len(args) > 0 && args[0] == "batch" {
			return nil, fmt.Errorf("line %d: %w", n, errNestedBatch)
		}
		lines = append(lines, args)
	}
	return lines, sc.Err()
}

func newBatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <script>",
		Short: "Run regdump command lines from a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			lines, err := parseScript(string(script))
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			// Global flags of the batch invocation apply to every line.
			var global []string
			cmd.InheritedFlags().VisitAll(func(f *pflag.Flag) {
				if f.Changed {
					global = append(global, "--"+f.Name+"="+f.Value.String())
				}
			})

			for _, line := range lines {
				log.Printf("batch: %s", strings.Join(line, " "))
				sub := NewCommand(cmd.OutOrStdout())
				sub.SetErr(cmd.ErrOrStderr())
				sub.SetArgs(append(global[:len(global):len(global)], line...))
				if err := sub.Execute(); err != nil {
					return fmt.Errorf("%s: %s: %w", args[0], strings.Join(line, " "), err)
				}
			}
			return nil
		},
	}
}
