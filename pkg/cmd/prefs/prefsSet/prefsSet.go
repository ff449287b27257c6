package prefsSet

import (
	"fmt"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/cheats/internal/prefs"
	"github.com/Paintersrp/cheats/internal/sheet"
	"github.com/Paintersrp/cheats/internal/state"
	cmdpkg "github.com/Paintersrp/cheats/pkg/cmd"
)

func NewCmdPrefsSet(s *state.State) *cobra.Command {
	var (
		offline    bool
		autoUpdate bool
		frequency  string
		lastCheck  string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change one or more preferences.",
		Long: heredoc.Doc(`
			Changes the given preferences and leaves the rest as they are. Pass
			"?" as the frequency to pick one interactively. The last check accepts
			most date formats, or "now".
		`),
		Example: heredoc.Doc(`
			cheats prefs set --offline=false
			cheats prefs set --frequency monthly --auto-update
			cheats prefs set --frequency ?
			cheats prefs set --last-check "2024-03-01"
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			f := cmd.Flags()
			if !f.Changed("offline") && !f.Changed("auto-update") &&
				!f.Changed("frequency") && !f.Changed("last-check") {
				return fmt.Errorf("no preferences given. See: cheats prefs set --help")
			}

			p, err := s.Prefs.Get(ctx)
			if err != nil {
				s.Notify.Failure("Failed to read preferences", err.Error())
				return nil
			}

			if f.Changed("offline") {
				p.EnableOfflineStorage = offline
			}
			if f.Changed("auto-update") {
				p.AutoUpdate = autoUpdate
			}
			if f.Changed("frequency") {
				freq, err := resolveFrequency(frequency)
				if err != nil {
					return err
				}
				p.UpdateFrequency = freq
			}
			if f.Changed("last-check") {
				t, err := parseCheck(lastCheck, s.Prefs.Now())
				if err != nil {
					return err
				}
				p.LastUpdateCheck = sheet.NewMillis(t)
			}

			if err := s.Prefs.Set(ctx, p); err != nil {
				if sheet.IsValidation(err) {
					return err
				}
				s.Notify.Failure("Failed to save preferences", err.Error())
				return nil
			}
			s.Notify.Success("Preferences saved", "")
			return nil
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", true, "Store remote cheatsheets for offline use")
	cmd.Flags().BoolVar(&autoUpdate, "auto-update", true, "Refresh offline cheatsheets automatically")
	cmd.Flags().StringVar(&frequency, "frequency", "", "Update frequency: every-use, weekly, monthly, never or ?")
	cmd.Flags().StringVar(&lastCheck, "last-check", "", "Time of the last update check")

	return cmd
}

func resolveFrequency(raw string) (prefs.Frequency, error) {
	if strings.TrimSpace(raw) != "?" {
		return prefs.ParseFrequency(raw)
	}

	labels := make([]string, len(prefs.Frequencies))
	for i, f := range prefs.Frequencies {
		labels[i] = f.Label()
	}
	choice, err := cmdpkg.Select("How often should offline cheatsheets be refreshed?", labels)
	if err != nil {
		return "", fmt.Errorf("error selecting frequency: %w", err)
	}
	return prefs.ParseFrequency(choice)
}

func parseCheck(raw string, now time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	switch strings.ToLower(raw) {
	case "now":
		return now, nil
	case "never", "":
		return time.Time{}, nil
	}

	t, err := dateparse.ParseLocal(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid last check %q: %w", raw, err)
	}
	return t, nil
}
