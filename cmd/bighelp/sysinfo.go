package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/bighelp/internal/domain/actions"
	"github.com/felixgeelhaar/bighelp/internal/ports"
)

var sysinfoCmd = &cobra.Command{
	Use:   "sysinfo",
	Short: "Show operating system, distribution, kernel and terminal",
	Args:  cobra.NoArgs,
	RunE:  runSysinfo,
}

func init() {
	rootCmd.AddCommand(sysinfoCmd)
}

func runSysinfo(cmd *cobra.Command, _ []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	defer s.close()

	info := s.probe().SystemInfo()
	s.logger.Debug(cmd.Context(), "system info", ports.F("platform", info.String()))
	_, err = fmt.Fprint(cmd.OutOrStdout(), actions.FormatSystemInfo(info))
	return err
}
