package cli

import "github.com/Lutefd/curconv/internal/presenter"

type Mode int

const (
	ModeConvert Mode = iota
	ModeHistory
	ModeHelp
)

type Invocation struct {
	Mode Mode
	// Format is empty unless --json or --csv was given.
	Format     presenter.Format
	Positional []string
}

// ParseArgs strips the recognized flags and keeps everything else, including
// negative numbers, as positional arguments. --history wins over every other
// flag; --json wins over --csv.
func ParseArgs(args []string) Invocation {
	inv := Invocation{Mode: ModeConvert}
	var asJSON, asCSV, help bool

	for _, arg := range args {
		switch arg {
		case "--history":
			inv.Mode = ModeHistory
		case "--help", "-h":
			help = true
		case "--json":
			asJSON = true
		case "--csv":
			asCSV = true
		default:
			inv.Positional = append(inv.Positional, arg)
		}
	}

	if help && inv.Mode != ModeHistory {
		inv.Mode = ModeHelp
	}
	switch {
	case asJSON:
		inv.Format = presenter.FormatJSON
	case asCSV:
		inv.Format = presenter.FormatCSV
	}
	return inv
}
