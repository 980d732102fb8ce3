package optreg

import (
	"fmt"
	"io"
	"strings"
)

// WriteHelp renders usage text for the registry: a usage line built from
// the positional list, then the named options sorted by primary alias
// with width-aligned descriptions. Hidden options are skipped and
// allowed-value enumerations are expanded beneath their option.
func WriteHelp(w io.Writer, r *Registry, prog, overview string) {
	if overview != "" {
		fmt.Fprintln(w, overview)
		fmt.Fprintln(w)
	}

	fmt.Fprint(w, "Usage: ", prog, " [options]")
	for _, p := range r.Positionals() {
		switch p.Occurrences {
		case Required:
			fmt.Fprintf(w, " <%s>", p.PrimaryAlias())
		case OneOrMore:
			fmt.Fprintf(w, " <%s>...", p.PrimaryAlias())
		case ZeroOrMore:
			fmt.Fprintf(w, " [%s...]", p.PrimaryAlias())
		case Optional:
			fmt.Fprintf(w, " [%s]", p.PrimaryAlias())
		}
	}
	fmt.Fprintln(w)

	positionals := visiblePositionals(r)
	if len(positionals) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Positional arguments:")
		width := 0
		for _, p := range positionals {
			if len(p.PrimaryAlias()) > width {
				width = len(p.PrimaryAlias())
			}
		}
		for _, p := range positionals {
			fmt.Fprintf(w, "  %-*s  %s\n", width, p.PrimaryAlias(), p.Description)
		}
	}

	options := visibleOptions(r)
	if len(options) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")

	width := 0
	for _, o := range options {
		if isValueAliasOption(o) {
			for _, av := range o.Parser.AllowedValues() {
				if n := len(av.Name) + 1; n > width {
					width = n
				}
			}
			continue
		}
		if n := len(optionDisplay(o)); n > width {
			width = n
		}
	}

	for _, o := range options {
		if isValueAliasOption(o) {
			// Unnamed enumerated options render one row per value alias.
			for _, av := range o.Parser.AllowedValues() {
				fmt.Fprintf(w, "  %-*s  %s\n", width, "-"+av.Name, av.Description)
			}
			continue
		}
		fmt.Fprintf(w, "  %-*s  %s\n", width, optionDisplay(o), o.Description)
		for _, av := range o.Parser.AllowedValues() {
			fmt.Fprintf(w, "    =%s - %s\n", av.Name, av.Description)
		}
	}
}

func visibleOptions(r *Registry) []*Option {
	all := r.Options()
	out := make([]*Option, 0, len(all))
	for _, o := range all {
		if !o.IsHidden() {
			out = append(out, o)
		}
	}
	return out
}

func visiblePositionals(r *Registry) []*Option {
	all := r.Positionals()
	out := make([]*Option, 0, len(all))
	for _, o := range all {
		if !o.IsHidden() {
			out = append(out, o)
		}
	}
	return out
}

// optionDisplay builds the left column for one option: every alias with a
// leading dash, then the value placeholder.
func optionDisplay(o *Option) string {
	var b strings.Builder
	for i, alias := range o.Aliases() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("-")
		b.WriteString(alias)
	}
	// Optional-argument options show a placeholder only when one was
	// named; bare flags stay clean.
	if o.Arg == ArgRequired || (o.Arg == ArgOptional && o.ArgName != "") {
		name := o.ArgName
		if name == "" {
			name = "value"
		}
		if o.Formatting == FormatPrefix {
			b.WriteString("<" + name + ">")
		} else {
			b.WriteString(" <" + name + ">")
		}
	}
	return b.String()
}

// isValueAliasOption reports whether the option was registered unnamed,
// with its parser's allowed values serving as aliases.
func isValueAliasOption(o *Option) bool {
	if o.Name != "" || o.Parser == nil {
		return false
	}
	return len(o.Parser.AllowedValues()) > 0
}
