package main

import (
	"github.com/spf13/cobra"

	"github.com/csvtrim/csvtrim/internal/errors"
	"github.com/csvtrim/csvtrim/internal/profile"
	"github.com/csvtrim/csvtrim/internal/ui"
)

type runFlags struct {
	dir   string
	store string
	tui   bool
}

func newRunCmd(global *globalFlags) *cobra.Command {
	flags := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start an interactive trimming session",
		Long: `Scan a directory for CSV and XLSX files, pick one, pick or create a
trimming profile, preview the result, and write it out. With --tui the
session runs as a full-screen dashboard instead of sequential prompts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(global, flags)
		},
	}

	cmd.Flags().StringVar(&flags.dir, "dir", ".", "Directory to scan for data files")
	cmd.Flags().StringVar(&flags.store, "store", "", "Profile store path (overrides config)")
	cmd.Flags().BoolVar(&flags.tui, "tui", false, "Full-screen session (Bubble Tea)")
	return cmd
}

func runSession(global *globalFlags, flags *runFlags) error {
	cfg, log, err := setupEnv(global)
	if err != nil {
		return err
	}
	defer log.Close()

	storePath := cfg.ProfileStore
	if flags.store != "" {
		storePath = flags.store
	}
	store, err := profile.Open(storePath)
	if err != nil {
		return errors.WrapStoreError(err, storePath)
	}
	log.Debug("profile store %s holds %d profile(s)", storePath, store.Len())

	session := &ui.Session{
		Config: cfg,
		Store:  store,
		Log:    log,
		Dir:    flags.dir,
	}
	if flags.tui {
		return ui.RunTUI(session)
	}
	return session.Run()
}
