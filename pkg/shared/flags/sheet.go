package flags

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/cheats/internal/clip"
)

// SheetInput holds the raw values of the custom sheet flags. A nil field
// means the flag was not given.
type SheetInput struct {
	Title       *string
	Content     *string
	Tags        *string
	Description *string
}

func AddSheet(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "Cheatsheet title")
	cmd.Flags().String("content", "", "Cheatsheet markdown content")
	cmd.Flags().StringP("file", "f", "", "Read the content from a file, - for stdin")
	cmd.Flags().String("tags", "", "Comma separated tags")
	cmd.Flags().String("description", "", "Short description")
	AddPaste(cmd)
	cmd.MarkFlagsMutuallyExclusive("content", "file", "paste")
}

// HandleSheet collects the flags that were set on the command line.
func HandleSheet(cmd *cobra.Command) (SheetInput, error) {
	var in SheetInput
	for name, dst := range map[string]**string{
		"title":       &in.Title,
		"content":     &in.Content,
		"tags":        &in.Tags,
		"description": &in.Description,
	} {
		if !cmd.Flags().Changed(name) {
			continue
		}
		v, err := cmd.Flags().GetString(name)
		if err != nil {
			return in, err
		}
		*dst = &v
	}

	if path, _ := cmd.Flags().GetString("file"); path != "" {
		content, err := readFile(cmd, path)
		if err != nil {
			return in, err
		}
		in.Content = &content
	}

	paste, err := HandlePaste(cmd)
	if err != nil {
		return in, err
	}
	if paste {
		content, err := clip.Read()
		if err != nil {
			return in, fmt.Errorf("error reading clipboard: %w", err)
		}
		in.Content = &content
	}

	return in, nil
}

func readFile(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("error reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading content file: %w", err)
	}
	return string(data), nil
}
