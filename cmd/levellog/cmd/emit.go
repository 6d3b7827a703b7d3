package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *command) initEmitCmd() {
	cmd := &cobra.Command{
		Use:   "emit LEVEL MESSAGE [ARG...]",
		Short: "Log one record",
		Long: `Log MESSAGE at LEVEL. Each {} in MESSAGE is replaced by the next ARG;
arguments left over are appended.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg := c.newLogConfig(cmd)
			level, ok := cfg.Registry().Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown level %q", args[0])
			}

			log, err := cfg.Get(c.config.GetString(optionNameName))
			if err != nil {
				return err
			}
			if minLevel := c.config.GetString(optionNameMinLevel); minLevel != "" {
				if l, ok := cfg.Registry().Lookup(minLevel); ok {
					log.SetLevel(l)
				}
			}

			values := make([]interface{}, 0, len(args)-1)
			for _, a := range args[1:] {
				values = append(values, a)
			}
			if c.config.GetBool(optionNameVerbose) {
				return log.VEmit(level, values...)
			}
			return log.Emit(level, values...)
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.config.BindPFlags(cmd.Flags())
		},
	}

	cmd.Flags().String(optionNameName, "cli", "logger name")
	cmd.Flags().String(optionNameMinLevel, "", "logger minimum level")
	cmd.Flags().Bool(optionNameVerbose, false, "log as a verbose record")

	c.root.AddCommand(cmd)
}
