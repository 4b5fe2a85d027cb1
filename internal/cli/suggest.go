package cli

import "github.com/agnivade/levenshtein"

var commands = []string{
	"add", "all", "clear", "done", "edit", "exit", "export",
	"filter", "help", "list", "ls", "quit", "rm", "toggle", "toggle-all",
}

// suggest returns the closest known command within edit distance 2, or "".
func suggest(cmd string) string {
	best, bestDist := "", 3
	for _, c := range commands {
		if d := levenshtein.ComputeDistance(cmd, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
