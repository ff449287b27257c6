package cmd

import (
	"context"
	"strings"

	"github.com/Paintersrp/cheats/internal/custom"
	"github.com/Paintersrp/cheats/internal/scratch"
	"github.com/Paintersrp/cheats/internal/sheet"
	"github.com/Paintersrp/cheats/internal/state"
	"github.com/Paintersrp/cheats/pkg/shared/flags"
)

const (
	fieldTitle       = "title"
	fieldContent     = "content"
	fieldTags        = "tags"
	fieldDescription = "description"
)

// SubmitFunc stores a custom sheet built from the form values.
type SubmitFunc func(ctx context.Context, in custom.Input) (sheet.CustomCheatsheet, error)

// SubmitSheet fills a custom sheet form from base, any saved draft for
// scope, and the flags in that order, then calls submit. The values are
// kept as a draft when submit rejects them and cleared once it succeeds.
func SubmitSheet(
	ctx context.Context,
	s *state.State,
	scope string,
	base custom.Input,
	in flags.SheetInput,
	submit SubmitFunc,
) (sheet.CustomCheatsheet, error) {
	form, err := scratch.AcquireForm(ctx, s.DB, scope, map[string]string{
		fieldTitle:       base.Title,
		fieldContent:     base.Content,
		fieldTags:        strings.Join(base.Tags, ", "),
		fieldDescription: base.Description,
	})
	if err != nil {
		return sheet.CustomCheatsheet{}, err
	}
	if form.Restored() {
		s.Notify.Warning("Draft restored", "Values from an earlier attempt were reused")
	}

	values := make(map[string]string, 4)
	for _, name := range []string{fieldTitle, fieldContent, fieldTags, fieldDescription} {
		values[name] = form.Field(name).Value()
	}
	overrides := map[string]*string{
		fieldTitle:       in.Title,
		fieldContent:     in.Content,
		fieldTags:        in.Tags,
		fieldDescription: in.Description,
	}
	for name, v := range overrides {
		if v != nil {
			values[name] = *v
		}
	}

	sh, err := submit(ctx, custom.Input{
		Title:       values[fieldTitle],
		Content:     values[fieldContent],
		Tags:        custom.ParseTags(values[fieldTags]),
		Description: values[fieldDescription],
	})
	if err != nil {
		if sheet.IsValidation(err) {
			if saveErr := form.Save(ctx, values); saveErr != nil {
				s.Log.Warn(ctx, "could not save draft", "scope", scope, "error", saveErr)
			}
		}
		return sh, err
	}

	if err := form.Clear(ctx); err != nil {
		s.Log.Warn(ctx, "could not clear draft", "scope", scope, "error", err)
	}
	return sh, nil
}
