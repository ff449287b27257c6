package arg

import (
	"fmt"
	"strings"
)

// HandleQuery joins the positional args into one search query.
func HandleQuery(args []string) (string, error) {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return "", fmt.Errorf("error: No query given. Try again")
	}
	return query, nil
}
