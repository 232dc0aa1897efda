package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/csvtrim/csvtrim/internal/errors"
	"github.com/csvtrim/csvtrim/internal/profile"
	"github.com/csvtrim/csvtrim/internal/ui"
)

func newProfilesCmd(global *globalFlags) *cobra.Command {
	var storeFlag string
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Manage stored trimming profiles",
		Long: `List, inspect, create, and delete the named profiles in the profile
store. The store is a single JSON file; its path comes from the config and
can be overridden with --store.`,
	}
	cmd.PersistentFlags().StringVar(&storeFlag, "store", "", "Profile store path (overrides config)")

	openStore := func() (*profile.Store, error) {
		cfg, _, err := setupEnv(global)
		if err != nil {
			return nil, err
		}
		path := cfg.ProfileStore
		if storeFlag != "" {
			path = storeFlag
		}
		store, err := profile.Open(path)
		if err != nil {
			return nil, errors.WrapStoreError(err, path)
		}
		return store, nil
	}

	cmd.AddCommand(newProfilesListCmd(openStore))
	cmd.AddCommand(newProfilesShowCmd(openStore))
	cmd.AddCommand(newProfilesCreateCmd(openStore))
	cmd.AddCommand(newProfilesDeleteCmd(openStore))
	return cmd
}

func newProfilesListCmd(openStore func() (*profile.Store, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "Profiles in %s:\n", store.Path())
			if store.Len() == 0 {
				fmt.Fprintln(os.Stdout, "  (none)")
				return nil
			}
			for _, name := range store.Names() {
				p, _ := store.Get(name)
				summary := strings.Join(p.Steps(), "; ")
				if summary == "" {
					summary = "no steps"
				}
				fmt.Fprintf(os.Stdout, "  %-20s %s\n", name, summary)
			}
			return nil
		},
	}
}

func newProfilesShowCmd(openStore func() (*profile.Store, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show one profile's resolved steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			name := args[0]
			p, ok := store.Get(name)
			if !ok {
				return errors.WrapProfileError(fmt.Errorf("not present in %s", store.Path()), name)
			}

			fmt.Fprintf(os.Stdout, "Profile %q\n", name)
			steps := p.Steps()
			if len(steps) == 0 {
				fmt.Fprintln(os.Stdout, "  (no steps)")
			}
			for _, step := range steps {
				fmt.Fprintf(os.Stdout, "  - %s\n", step)
			}
			if idx, ok := p.DeleteColumn.Index(); ok {
				fmt.Fprintf(os.Stdout, "  delete_column %q parsed as 1-based position %d\n",
					p.DeleteColumn.String(), idx+1)
			} else if label, ok := p.DeleteColumn.Label(); ok {
				fmt.Fprintf(os.Stdout, "  delete_column %q parsed as an exact label match\n", label)
			}
			return nil
		},
	}
}

func newProfilesCreateCmd(openStore func() (*profile.Store, error)) *cobra.Command {
	opts := &ui.WizardOptions{}
	var interactive bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create or replace a profile",
		Long: `Create a profile from flags, or walk through the interactive wizard
with --interactive. An existing profile with the same name is replaced
wholesale.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}

			var name string
			var p profile.Profile
			if interactive {
				name, p, err = ui.RunProfileWizard()
			} else {
				name, p, err = ui.BuildWizardProfile(*opts)
			}
			if err != nil {
				return err
			}

			if err := store.Set(name, p); err != nil {
				return err
			}
			if err := store.Save(); err != nil {
				return errors.WrapStoreError(err, store.Path())
			}
			fmt.Fprintf(os.Stdout, "Saved profile %q to %s\n", name, store.Path())
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "Profile name")
	cmd.Flags().BoolVar(&opts.RemoveBlankRows, "remove-blank-rows", false, "Drop rows where every cell is missing")
	cmd.Flags().StringVar(&opts.TrimPrefixes, "trim-prefixes", "", "Comma-separated prefixes of rows to drop")
	cmd.Flags().StringVar(&opts.DeleteColumn, "delete-column", "", "Column to delete: 1-based number or exact label")
	cmd.Flags().StringVar(&opts.FormatDatetime, "format-datetime", "", "Zero-based column to rewrite as YYYY-MM-DD HH:MM:SS")
	cmd.Flags().BoolVar(&opts.UseFirstRowAsHeader, "header", false, "Write the first remaining row as the header line")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "Use the interactive wizard")
	return cmd
}

func newProfilesDeleteCmd(openStore func() (*profile.Store, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			name := args[0]
			if !store.Delete(name) {
				return errors.WrapProfileError(fmt.Errorf("not present in %s", store.Path()), name)
			}
			if err := store.Save(); err != nil {
				return errors.WrapStoreError(err, store.Path())
			}
			fmt.Fprintf(os.Stdout, "Deleted profile %q\n", name)
			return nil
		},
	}
}
