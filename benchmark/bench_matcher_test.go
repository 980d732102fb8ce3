//nolint:testpackage // using package name 'benchmark' to access unexported fields for testing
package benchmark

import (
	"testing"

	fuzzy "github.com/optreg/go-optreg/internal/fuzzy"
	intern "github.com/optreg/go-optreg/internal/intern"
	"github.com/optreg/go-optreg/optreg"
)

// Category: matcher

func buildCompilerRegistry() *optreg.Registry {
	return optreg.NewRegistry().
		String("I", "Include directory").Prefix().ZeroOrMore().Back().
		String("D", "Preprocessor define").Prefix().ZeroOrMore().Back().
		String("o|output", "Output file").Back().
		Bool("v|verbose", "Verbose output").Back().
		Bool("g", "Debug info").Grouping().Back().
		Bool("c", "Compile only").Grouping().Back().
		PositionalSeq("inputs", "Input files").Back()
}

func BenchmarkMatcherPrefixOptions(b *testing.B) {
	reg := buildCompilerRegistry()
	tokens := []string{"-I/usr/include", "-I/opt/include", "-DNDEBUG", "-DX=1"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reg.Reset()
		if err := reg.Parse(tokens); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMatcherMixedInvocation(b *testing.B) {
	reg := buildCompilerRegistry()
	tokens := []string{"-gc", "-I/usr/include", "-o", "a.out", "--verbose", "main.c", "util.c"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reg.Reset()
		if err := reg.Parse(tokens); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMatcherCommaSeparated(b *testing.B) {
	reg := optreg.NewRegistry().
		StringSeq("tags", "Tag list").CommaSeparated().Back()
	tokens := []string{"--tags=a,b,c,d,e,f"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reg.Reset()
		if err := reg.Parse(tokens); err != nil {
			b.Fatal(err)
		}
	}
}

// Category: tokenize

func BenchmarkTokenizeGNU(b *testing.B) {
	line := `-I/usr/include -D'NAME=with space' --output "a b.out" main.c`
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = optreg.TokenizeGNU(line)
	}
}

func BenchmarkTokenizeWindows(b *testing.B) {
	line := `/I "C:\Program Files\inc" /DNDEBUG main.c`
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = optreg.TokenizeWindows(line)
	}
}

// Category: fuzzy

func BenchmarkFuzzyFindBest(b *testing.B) {
	matcher := fuzzy.NewMatcher(2)
	candidates := []string{
		"help", "version", "verbose", "output", "input",
		"include", "define", "optimize", "target", "link",
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matcher.FindBest("verbse", candidates)
	}
}

// Category: intern

func BenchmarkInternAlias(b *testing.B) {
	aliases := []string{"verbose", "output", "include", "define", "help"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		intern.Intern(aliases[i%len(aliases)])
	}
}

func BenchmarkInternRune(b *testing.B) {
	runes := []rune{'a', 'h', 'v', 'c', 'g', 'x'}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		intern.InternRune(runes[i%len(runes)])
	}
}
