/*
File    : minilang/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements minilang's interactive read-eval-print loop.
It uses github.com/chzyer/readline for line editing and history and
github.com/fatih/color for banner, prompt, and diagnostic coloring,
and drives a driver.Session instead of a bare evaluator so the
`/scope` and `/exit` meta-commands have somewhere to reach.
*/
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/akashmaji946/minilang/driver"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration of an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	Prompt  string
}

// New creates a Repl with the given banner, version, author, and
// prompt.
func New(banner, version, author, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, Prompt: prompt}
}

// printBanner displays the welcome banner and usage instructions.
func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to minilang!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter.")
	cyanColor.Fprintf(writer, "%s\n", "/scope dumps the current environment, /exit quits.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop against writer until the user exits or
// readline reaches EOF (Ctrl+D).
func (r *Repl) Start(writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		fmt.Fprintln(writer, err)
		return
	}
	defer rl.Close()

	sess := driver.NewSession()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "/exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}
		if line == "/scope" {
			yellowColor.Fprintf(writer, "%s\n", sess.DumpEnv())
			continue
		}

		rl.SaveHistory(line)
		r.evalLine(writer, sess, line)
	}
}

// evalLine feeds one line of input to sess and prints either the
// printed output (yellow) or the diagnostic (red).
func (r *Repl) evalLine(writer io.Writer, sess *driver.Session, line string) {
	out, err := sess.Eval(line)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
		return
	}
	for _, entry := range out {
		yellowColor.Fprintf(writer, "%s\n", entry)
	}
}
