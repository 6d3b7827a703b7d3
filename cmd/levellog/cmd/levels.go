package cmd

import (
	"github.com/spf13/cobra"
)

func (c *command) initLevelsCmd() {
	c.root.AddCommand(&cobra.Command{
		Use:   "levels",
		Short: "Print the known levels in ascending priority",
		Run: func(cmd *cobra.Command, args []string) {
			for _, l := range c.newLogConfig(cmd).Registry().Levels() {
				cmd.Printf("%-6s %d\n", l.Name(), l.Priority())
			}
		},
	})
}
