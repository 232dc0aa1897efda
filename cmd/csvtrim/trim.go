package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/csvtrim/csvtrim/internal/csvio"
	"github.com/csvtrim/csvtrim/internal/engine"
	"github.com/csvtrim/csvtrim/internal/errors"
	"github.com/csvtrim/csvtrim/internal/profile"
	"github.com/csvtrim/csvtrim/internal/ui"
)

type trimFlags struct {
	profileName    string
	store          string
	removeBlank    bool
	prefixes       []string
	deleteColumn   string
	formatDatetime int
	header         bool
	out            string
	preview        bool
	diff           bool
	copyCommand    bool
}

func newTrimCmd(global *globalFlags) *cobra.Command {
	flags := &trimFlags{}
	cmd := &cobra.Command{
		Use:   "trim <file>",
		Short: "Apply a trimming profile to one file",
		Long: `Apply a stored profile (--profile) or inline step flags to a CSV or
XLSX file and write the trimmed result. --preview and --diff inspect the
outcome without writing anything.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrim(global, flags, args[0])
		},
	}

	cmd.Flags().StringVar(&flags.profileName, "profile", "", "Stored profile to apply")
	cmd.Flags().StringVar(&flags.store, "store", "", "Profile store path (overrides config)")
	cmd.Flags().BoolVar(&flags.removeBlank, "remove-blank-rows", false, "Drop rows where every cell is missing")
	cmd.Flags().StringArrayVar(&flags.prefixes, "trim-prefix", nil, "Drop rows whose first column starts with this prefix (repeatable)")
	cmd.Flags().StringVar(&flags.deleteColumn, "delete-column", "", "Column to delete: 1-based number or exact label")
	cmd.Flags().IntVar(&flags.formatDatetime, "format-datetime", -1, "Zero-based column to rewrite as YYYY-MM-DD HH:MM:SS")
	cmd.Flags().BoolVar(&flags.header, "header", false, "Write the first remaining row as the header line")
	cmd.Flags().StringVar(&flags.out, "out", "", "Output path (default: trimmed_<input> next to the input)")
	cmd.Flags().BoolVar(&flags.preview, "preview", false, "Print a preview instead of writing")
	cmd.Flags().BoolVar(&flags.diff, "diff", false, "Print a before/after diff instead of writing")
	cmd.Flags().BoolVar(&flags.copyCommand, "copy", false, "Copy the equivalent command line to the clipboard")
	return cmd
}

func runTrim(global *globalFlags, flags *trimFlags, input string) error {
	cfg, log, err := setupEnv(global)
	if err != nil {
		return err
	}
	defer log.Close()

	p, name, err := resolveTrimProfile(cfg.ProfileStore, flags)
	if err != nil {
		return err
	}

	t, err := csvio.Read(input)
	if err != nil {
		return errors.WrapFileError(err, input)
	}

	result, report, err := engine.ApplyWithOptions(t, p, engine.Options{
		DatetimeLayouts: cfg.DatetimeLayouts,
	})
	logName := name
	if logName == "" {
		logName = "(inline)"
	}
	log.LogApply(logName, input, t.RowCount(), result.RowCount(), err)
	if err != nil {
		return errors.WrapApplyError(err, logName, input)
	}

	out := flags.out
	if out == "" {
		out = csvio.OutputPath(input, cfg.OutputDir, cfg.OutputPrefix)
	}
	command := ui.BuildCommand(input, out, name, p)

	if flags.copyCommand {
		if err := ui.CopyCommand(command); err != nil {
			log.Error("clipboard unavailable: %v", err)
		} else {
			fmt.Fprintln(os.Stdout, "Command copied to clipboard.")
		}
	}

	if flags.diff {
		before, err := csvio.TableText(t, false)
		if err != nil {
			return err
		}
		after, err := csvio.TableText(result, p.UseFirstRowAsHeader)
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stdout, csvio.Diff(before, after))
	}
	if flags.preview {
		shown := result
		if p.UseFirstRowAsHeader {
			shown = shown.PromoteFirstRowToHeader()
		}
		fmt.Fprintln(os.Stdout, ui.RenderPreview(shown, cfg.PreviewRows))
		fmt.Fprintln(os.Stdout, ui.RenderReviewScreen(name, report, command))
	}
	if flags.preview || flags.diff {
		return nil
	}

	if out == input {
		return fmt.Errorf("refusing to overwrite the input file %s; use --out", input)
	}
	if err := csvio.WriteCSV(out, result, p.UseFirstRowAsHeader); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Wrote %s (%d rows, %d columns)\n", out, result.RowCount(), result.Columns())
	return nil
}

// resolveTrimProfile picks between a stored profile and one assembled from
// inline flags. Mixing both is rejected rather than guessed at.
func resolveTrimProfile(defaultStore string, flags *trimFlags) (profile.Profile, string, error) {
	inline := flags.removeBlank || len(flags.prefixes) > 0 ||
		flags.deleteColumn != "" || flags.formatDatetime >= 0 || flags.header

	if flags.profileName != "" {
		if inline {
			return profile.Profile{}, "", fmt.Errorf("use either --profile or inline step flags, not both")
		}
		storePath := defaultStore
		if flags.store != "" {
			storePath = flags.store
		}
		store, err := profile.Open(storePath)
		if err != nil {
			return profile.Profile{}, "", errors.WrapStoreError(err, storePath)
		}
		p, ok := store.Get(flags.profileName)
		if !ok {
			return profile.Profile{}, "", errors.WrapProfileError(
				fmt.Errorf("not present in %s", storePath), flags.profileName)
		}
		return p, flags.profileName, nil
	}

	if !inline {
		return profile.Profile{}, "", fmt.Errorf("nothing to do: pass --profile or at least one step flag")
	}

	p := profile.Profile{
		RemoveBlankRows:     flags.removeBlank,
		TrimPrefixes:        flags.prefixes,
		UseFirstRowAsHeader: flags.header,
	}
	if flags.deleteColumn != "" {
		p.DeleteColumn = profile.ParseColumnSelector(flags.deleteColumn)
	}
	if flags.formatDatetime >= 0 {
		idx := flags.formatDatetime
		p.FormatDatetime = &idx
	}
	if err := p.Validate(); err != nil {
		return profile.Profile{}, "", err
	}
	return p, "", nil
}
