package entropy

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/verte-zerg/pass-phrase/internal/model"
)

// RenderOptions controls report output. Color emits escape codes even
// when w is not a terminal.
type RenderOptions struct {
	Color bool
}

func crackTimeStyle(w io.Writer) lipgloss.Style {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.TrueColor)
	return r.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
}

// Render writes the verbose report: where each list lives, how large it
// is, the combined entropy and the crack-time estimate.
func Render(w io.Writer, r Report, paths map[model.Role]string, opts RenderOptions) error {
	for _, role := range model.Roles {
		loc := paths[role]
		if abs, err := filepath.Abs(loc); err == nil {
			loc = abs
		}
		if _, err := fmt.Fprintf(w, "The supplied %s list is located at %s.\n", role, loc); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Your %s word list contains %d words, or 2^%s words.\n",
			role, r.Sizes[role], FormatBits(r.PerRoleBits[role])); err != nil {
			return err
		}
	}

	slots := r.SlotBits()
	if _, err := fmt.Fprintf(w, "A passphrase from this list will have roughly %.0f (%.2f + %.2f + %.2f + %.2f + %.2f) bits of entropy,\n",
		math.Trunc(r.TotalBits), slots[0], slots[1], slots[2], slots[3], slots[4]); err != nil {
		return err
	}
	crack := r.CrackTime
	if opts.Color {
		crack = crackTimeStyle(w).Render(crack)
	}
	if _, err := fmt.Fprintf(w, "Estimated time to crack this pass phrase (at 1,000 guesses per second): %s\n\n", crack); err != nil {
		return err
	}
	return nil
}

// ShouldUseColor reports whether w is a terminal that accepts colour.
func ShouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
