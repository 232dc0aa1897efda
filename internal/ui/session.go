// Package ui is the interactive layer of csvtrim: the menu-driven session,
// the profile creation wizard, and the preview/review rendering shared with
// the non-interactive commands.
package ui

import (
	stderrors "errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/csvtrim/csvtrim/internal/config"
	"github.com/csvtrim/csvtrim/internal/csvio"
	"github.com/csvtrim/csvtrim/internal/engine"
	"github.com/csvtrim/csvtrim/internal/errors"
	"github.com/csvtrim/csvtrim/internal/logging"
	"github.com/csvtrim/csvtrim/internal/profile"
	"github.com/csvtrim/csvtrim/internal/table"
)

// Menu sentinels. Profile names share the select list with these, so they
// are phrased in a way no sane profile name collides with.
const (
	choiceNewProfile = "+ create a new profile"
	choiceBack       = "< back"
	choiceQuit       = "x quit"
)

// Review actions.
const (
	actionWrite = "write"
	actionCopy  = "copy"
	actionBack  = "back"
)

// Session is one interactive csvtrim run: scan a directory, pick a file,
// pick or create a profile, apply, review, write.
type Session struct {
	Config *config.Config
	Store  *profile.Store
	Log    *logging.Logger
	Dir    string
}

// Run drives the session until the user quits. Aborted prompts (Esc) back
// out one menu level rather than failing the session.
func (s *Session) Run() error {
	for {
		files, err := csvio.FindInputs(s.Dir)
		if err != nil {
			return err
		}
		fmt.Println(RenderHomeScreen(s.Dir, files, s.Store.Names()))
		if len(files) == 0 {
			return nil
		}

		file, err := s.pickFile(files)
		if stderrors.Is(err, huh.ErrUserAborted) || file == choiceQuit {
			return nil
		}
		if err != nil {
			return err
		}
		if err := s.fileLoop(filepath.Join(s.Dir, file)); err != nil {
			return err
		}
	}
}

func (s *Session) pickFile(files []string) (string, error) {
	options := make([]huh.Option[string], 0, len(files)+1)
	for _, f := range files {
		options = append(options, huh.NewOption(f, f))
	}
	options = append(options, huh.NewOption(choiceQuit, choiceQuit))

	var choice string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Pick a file to trim").
			Options(options...).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return choice, nil
}

// fileLoop keeps offering profiles for one file until the user backs out.
func (s *Session) fileLoop(path string) error {
	for {
		choice, err := s.pickProfile()
		if stderrors.Is(err, huh.ErrUserAborted) || choice == choiceBack {
			return nil
		}
		if err != nil {
			return err
		}

		var name string
		var p profile.Profile
		switch choice {
		case choiceNewProfile:
			name, p, err = RunProfileWizard()
			if stderrors.Is(err, huh.ErrUserAborted) {
				continue
			}
			if err != nil {
				fmt.Println(err)
				continue
			}
			if err := s.Store.Set(name, p); err != nil {
				return err
			}
			if err := s.Store.Save(); err != nil {
				return errors.WrapStoreError(err, s.Store.Path())
			}
			s.Log.Info("saved profile %q to %s", name, s.Store.Path())
		default:
			name = choice
			var ok bool
			p, ok = s.Store.Get(name)
			if !ok {
				return errors.WrapProfileError(fmt.Errorf("profile disappeared from store"), name)
			}
		}

		if err := s.applyAndReview(path, name, p); err != nil {
			return err
		}
	}
}

func (s *Session) pickProfile() (string, error) {
	names := s.Store.Names()
	options := make([]huh.Option[string], 0, len(names)+2)
	for _, n := range names {
		options = append(options, huh.NewOption(n, n))
	}
	options = append(options,
		huh.NewOption(choiceNewProfile, choiceNewProfile),
		huh.NewOption(choiceBack, choiceBack),
	)

	var choice string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Pick a trimming profile").
			Options(options...).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return choice, nil
}

// applyAndReview runs the profile against the file, shows the preview and
// the review panel, and acts on the user's decision. Engine failures are
// reported and return the user to the profile menu; nothing is written.
func (s *Session) applyAndReview(path, name string, p profile.Profile) error {
	t, err := csvio.Read(path)
	if err != nil {
		fmt.Println(errors.WrapFileError(err, path))
		return nil
	}

	result, report, err := engine.ApplyWithOptions(t, p, engine.Options{
		DatetimeLayouts: s.Config.DatetimeLayouts,
	})
	s.Log.LogApply(name, path, t.RowCount(), result.RowCount(), err)
	if err != nil {
		fmt.Println(errors.WrapApplyError(err, name, path))
		return nil
	}

	out := csvio.OutputPath(path, s.Config.OutputDir, s.Config.OutputPrefix)
	command := BuildCommand(path, out, name, p)

	fmt.Println(RenderPreview(previewTable(result, p), s.Config.PreviewRows))
	fmt.Println(RenderReviewScreen(name, report, command))

	for {
		action, err := s.pickAction(out)
		if stderrors.Is(err, huh.ErrUserAborted) || action == actionBack {
			return nil
		}
		if err != nil {
			return err
		}
		switch action {
		case actionWrite:
			if out == path {
				fmt.Printf("Refusing to overwrite the input file %s\n", path)
				continue
			}
			if err := csvio.WriteCSV(out, result, p.UseFirstRowAsHeader); err != nil {
				return err
			}
			fmt.Printf("Wrote %s (%d rows)\n", out, result.RowCount())
			return nil
		case actionCopy:
			if err := CopyCommand(command); err != nil {
				fmt.Printf("Clipboard unavailable: %v\n", err)
				continue
			}
			fmt.Println("Command copied to clipboard.")
		}
	}
}

func (s *Session) pickAction(out string) (string, error) {
	var action string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Next step").
			Options(
				huh.NewOption(fmt.Sprintf("Write %s", out), actionWrite),
				huh.NewOption("Copy equivalent command", actionCopy),
				huh.NewOption("Back", actionBack),
			).
			Value(&action),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return action, nil
}

// previewTable applies the header promotion the writer would do, so the
// preview shows what will land on disk.
func previewTable(t table.Table, p profile.Profile) table.Table {
	if p.UseFirstRowAsHeader {
		return t.PromoteFirstRowToHeader()
	}
	return t
}
