/*
File    : minilang/cmd/minilang/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the minilang interpreter. It
provides three modes of operation:
 1. REPL mode (default): interactive read-eval-print loop.
 2. File mode: execute a minilang source file from the command line.
 3. Server mode: accept TCP connections, one driver.Session per
    connection, and evaluate each program the client ends with a
    blank line until the connection closes.
*/
package main

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/akashmaji946/minilang/driver"
	"github.com/akashmaji946/minilang/file"
	"github.com/akashmaji946/minilang/repl"
	"github.com/fatih/color"
)

const (
	version = "v1.0.0"
	author  = "akashmaji(@iisc.ac.in)"
	prompt  = "minilang >>> "
	line    = "----------------------------------------------------------------"
)

const banner = `
  __  __ _       _ _
 |  \/  (_)_ __ (_) | __ _ _ __   __ _
 | |\/| | | '_ \| | |/ _' | '_ \ / _' |
 | |  | | | | | | | | (_| | | | | (_| |
 |_|  |_|_|_| |_|_|_|\__,_|_| |_|\__, |
                                 |___/
`

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) <= 1 {
		repl.New(banner, version, author, line, prompt).Start(os.Stdout)
		return
	}

	switch arg := os.Args[1]; arg {
	case "--help", "-h":
		showHelp()
	case "--version", "-v":
		showVersion()
	case "server":
		if len(os.Args) < 3 {
			redColor.Fprintln(os.Stderr, "Usage: minilang server <port>")
			os.Exit(1)
		}
		runServer(os.Args[2])
	default:
		runFile(arg)
	}
}

func showHelp() {
	cyanColor.Println("minilang - a small imperative teaching language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  minilang                  Start interactive REPL mode")
	yellowColor.Println("  minilang <path-to-file>   Execute a minilang source file")
	yellowColor.Println("  minilang server <port>    Start a TCP evaluation server")
	yellowColor.Println("  minilang --help           Display this help message")
	yellowColor.Println("  minilang --version        Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  /scope                    Dump the current environment chain")
	yellowColor.Println("  /exit                     Exit the REPL")
}

func showVersion() {
	cyanColor.Printf("minilang %s\n", version)
	cyanColor.Printf("Author : %s\n", author)
}

// runFile reads a source file and evaluates it as a single program.
func runFile(path string) {
	source, err := file.Load(path)
	if err != nil {
		redColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	out, err := driver.Run(source)
	if err != nil {
		redColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, entry := range out {
		fmt.Println(entry)
	}
}

// runServer listens on port and spawns one driver.Session per
// connection, since an Evaluator is never safe to share across
// goroutines.
func runServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	defer listener.Close()
	cyanColor.Printf("minilang server listening on :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "Failed to accept connection: %v\n", err)
			continue
		}
		go handleConnection(conn)
	}
}

// handleConnection implements a trivial line protocol: accumulate
// lines until a blank one, submit the buffer as one program, write
// back the output (or an ERROR line), and repeat until the client
// hangs up.
func handleConnection(conn net.Conn) {
	defer conn.Close()

	sess := driver.NewSession()
	scanner := bufio.NewScanner(conn)
	var buf strings.Builder

	for scanner.Scan() {
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			out, err := sess.Eval(buf.String())
			buf.Reset()
			if err != nil {
				fmt.Fprintf(conn, "ERROR: %s\n", err.Error())
				continue
			}
			for _, entry := range out {
				fmt.Fprintln(conn, entry)
			}
			continue
		}
		buf.WriteString(text)
		buf.WriteString("\n")
	}
}
