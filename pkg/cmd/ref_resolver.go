package cmd

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Paintersrp/cheats/internal/custom"
	"github.com/Paintersrp/cheats/internal/fold"
	"github.com/Paintersrp/cheats/internal/sheet"
	"github.com/Paintersrp/cheats/internal/state"
)

const customIDPrefix = "custom-"

var slugPattern = regexp.MustCompile(`^[A-Za-z0-9@_+-][A-Za-z0-9@._+/-]*$`)

// ResolveRef turns a command argument into a sheet reference. Custom sheets
// are addressed by id or case-insensitive title, either with custom set or
// when arg carries the custom id prefix. Anything else is a remote slug.
func ResolveRef(ctx context.Context, s *state.State, arg string, custom bool) (sheet.Ref, error) {
	if s == nil || s.Custom == nil {
		return nil, fmt.Errorf("state is not initialized")
	}
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil, fmt.Errorf("a cheatsheet argument is required")
	}

	if custom || strings.HasPrefix(arg, customIDPrefix) {
		return resolveCustom(ctx, s.Custom, arg)
	}

	slug := strings.TrimSuffix(arg, ".md")
	if err := validateSlug(slug); err != nil {
		return nil, err
	}
	return sheet.DefaultRef{Name: slug}, nil
}

func resolveCustom(ctx context.Context, store *custom.Store, arg string) (sheet.Ref, error) {
	if sh, ok, err := store.Get(ctx, arg); err != nil {
		return nil, err
	} else if ok {
		return sheet.CustomRef{Sheet: sh}, nil
	}

	sheets, err := store.List(ctx)
	if err != nil {
		return nil, err
	}
	want := fold.String(arg)
	for _, sh := range sheets {
		if fold.String(sh.Title) == want {
			return sheet.CustomRef{Sheet: sh}, nil
		}
	}

	return nil, fmt.Errorf("no custom cheatsheet matches %q: %w", arg, sheet.ErrNotFound)
}

func validateSlug(slug string) error {
	if !slugPattern.MatchString(slug) {
		return fmt.Errorf("invalid cheatsheet name %q", slug)
	}
	for _, part := range strings.Split(slug, "/") {
		if part == "" || part == "." || part == ".." {
			return fmt.Errorf("cheatsheet name %q escapes the repository", slug)
		}
	}
	return nil
}
