package show

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/cheats/internal/catalog"
	"github.com/Paintersrp/cheats/internal/content"
	"github.com/Paintersrp/cheats/internal/sheet"
	"github.com/Paintersrp/cheats/internal/state"
	cmdpkg "github.com/Paintersrp/cheats/pkg/cmd"
	"github.com/Paintersrp/cheats/pkg/shared/flags"
)

func NewCmdShow(s *state.State) *cobra.Command {
	var (
		outline bool
		raw     bool
		url     bool
	)

	cmd := &cobra.Command{
		Use:     "show [name]",
		Aliases: []string{"view", "v"},
		Short:   "Render a cheatsheet in the terminal.",
		Long: heredoc.Doc(`
			Shows a remote cheatsheet by its name (for example "git" or
			"vim/plugins") or a custom cheatsheet by its id or, with --custom, its
			title. Remote content is cleaned of site markup before rendering.

			When the network is unavailable the offline copy, bundled sample data
			or a placeholder is shown instead, and a warning says which.
		`),
		Example: heredoc.Doc(`
			cheats show git
			cheats show --outline python
			cheats show --custom "Git Notes"
			cheats show --url react
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ref, err := cmdpkg.ResolveRef(ctx, s, args[0], flags.HandleCustom(cmd))
			if err != nil {
				return err
			}

			if url {
				if ref.Provenance() != sheet.ProvenanceDefault {
					return fmt.Errorf("custom cheatsheets have no public page")
				}
				fmt.Fprintln(s.Out, s.Catalog.URLFor(ref.Slug()))
				return nil
			}

			c, err := s.Catalog.Resolve(ctx, ref)
			if err != nil {
				s.Notify.Failure("Failed to load cheatsheet", err.Error())
				return nil
			}
			if c.Status == sheet.StatusFailed {
				s.Notify.Failure("Failed to load cheatsheet", fmt.Sprintf("%q has no content", ref.Title()))
				return nil
			}
			s.Notify.Fallback(ref.Title(), c.Reason)

			if err := s.Catalog.RecordVisit(ctx, ref); err != nil {
				s.Log.Warn(ctx, "could not record visit", "error", err)
			}

			switch {
			case raw:
				body := c.Raw
				if body == "" {
					body = c.Markdown
				}
				_, err = fmt.Fprint(s.Out, body)
			case outline:
				for _, h := range content.Outline(c.Markdown) {
					fmt.Fprintln(s.Out, h.String())
				}
			default:
				err = s.Renderer.Write(s.Out, header(ref, c)+c.Markdown)
			}
			return err
		},
	}

	flags.AddCustom(cmd)
	cmd.Flags().BoolVar(&outline, "outline", false, "Print only the heading outline")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the unprocessed markdown")
	cmd.Flags().BoolVar(&url, "url", false, "Print the devhints.io address instead of the content")
	cmd.MarkFlagsMutuallyExclusive("outline", "raw", "url")

	return cmd
}

// header adds a title line for remote sheets whose front matter names one
// that the body does not repeat.
func header(ref sheet.Ref, c catalog.Content) string {
	if ref.Provenance() != sheet.ProvenanceDefault || c.Raw == "" {
		return ""
	}
	fm, ok, err := content.ParseFrontMatter(c.Raw)
	if err != nil || !ok || fm.Title == "" {
		return ""
	}
	for _, h := range content.Outline(c.Markdown) {
		if h.Level == 1 {
			return ""
		}
	}

	out := "# " + fm.Title + "\n\n"
	if fm.Intro != "" {
		out += fm.Intro + "\n\n"
	}
	return out
}
