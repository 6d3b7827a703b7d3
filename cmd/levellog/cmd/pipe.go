package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/philipp01105/levellog/core"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

func (c *command) initPipeCmd() {
	cmd := &cobra.Command{
		Use:   "pipe [LEVEL]",
		Short: "Log every line read from standard input",
		Long: `Log every line of standard input at LEVEL (default INFO).

A line starting with a level name followed by a colon, such as
"WARN: disk at 91%", is logged at that level with the tag removed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg := c.newLogConfig(cmd)
			diag := c.newDiagLogger(cmd)

			level := core.InfoLevel
			if len(args) > 0 {
				l, ok := cfg.Registry().Lookup(args[0])
				if !ok {
					return fmt.Errorf("unknown level %q", args[0])
				}
				level = l
			}

			log, err := cfg.Get(c.config.GetString(optionNameName))
			if err != nil {
				return err
			}

			var lines int
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				lvl, msg := splitLevel(cfg.Registry(), scanner.Text(), level)
				err = multierr.Append(err, log.Emit(lvl, msg))
				lines++
			}
			diag.VDebug("read {} lines", lines)
			return multierr.Append(err, scanner.Err())
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.config.BindPFlags(cmd.Flags())
		},
	}

	cmd.Flags().String(optionNameName, "pipe", "logger name")

	c.root.AddCommand(cmd)
}

// splitLevel returns the level named by a leading "NAME:" tag of line
// and the rest of the line, or def and the whole line.
func splitLevel(reg *core.Registry, line string, def core.Level) (core.Level, string) {
	i := strings.IndexByte(line, ':')
	if i <= 0 {
		return def, line
	}
	l, ok := reg.Lookup(line[:i])
	if !ok {
		return def, line
	}
	return l, strings.TrimLeft(line[i+1:], " \t")
}
