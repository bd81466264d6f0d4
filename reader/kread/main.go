package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/knight/ast"
	"github.com/npillmayer/knight/reader"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// sample is read if neither a program argument nor a file is given.
const sample = `;=xE P;=yE P;=i~1W>^x 2=i+1iO+0>y%+x%--/i x iTx x`

// main() reads a Knight program and prints the syntax tree, either as a
// one-line list or as a tree.
//
// Please refer to packages "reader" and "ast".
//
func main() {
	// set up logging
	initDisplay()
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	filename := flag.String("f", "", "Read program from file")
	strict := flag.Bool("strict", false, "Fail on unclassifiable input")
	tree := flag.Bool("tree", false, "Print syntax trees as trees")
	interactive := flag.Bool("i", false, "Interactive mode")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	tracer().Infof("Trace level is %s", *tlevel)
	//
	intp := &Intp{
		opts: []reader.Option{reader.Strict(*strict)},
		tree: *tree,
	}
	if *interactive {
		repl, err := readline.New("kread> ")
		if err != nil {
			tracer().Errorf("%v", err)
			os.Exit(3)
		}
		defer repl.Close()
		intp.repl = repl
		pterm.Info.Println("Welcome to kread") // colored welcome message
		tracer().Infof("Quit with <ctrl>D")    // inform user how to stop the CLI
		intp.REPL()
		return
	}
	input, err := programInput(*filename, flag.Args())
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	if err = intp.Read(input); err != nil {
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func programInput(filename string, args []string) (string, error) {
	if filename != "" {
		b, err := ioutil.ReadFile(filename)
		if err != nil {
			return "", fmt.Errorf("unable to read program: %v", err)
		}
		return string(b), nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	tracer().Infof("No program given, reading sample program")
	return sample, nil
}

// Intp is our driver object
type Intp struct {
	repl *readline.Instance
	opts []reader.Option
	tree bool // print trees instead of lists
}

// REPL starts interactive mode. Lines starting with a colon are commands:
//
//    :tree   toggle tree output
//    :quit   leave
//
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		switch strings.TrimSpace(line) {
		case ":quit":
			println("Good bye!")
			return
		case ":tree":
			intp.tree = !intp.tree
			tracer().Infof("tree output is %v", intp.tree)
			continue
		}
		intp.Read(line)
	}
	println("Good bye!")
}

// Read reads a program and prints its syntax tree.
func (intp *Intp) Read(input string) error {
	tree, err := reader.Parse(input, intp.opts...)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	intp.printResult(tree)
	return nil
}

func (intp *Intp) printResult(tree ast.Node) {
	if !intp.tree {
		pterm.Info.Println(ast.ListString(tree))
		return
	}
	root := pterm.NewTreeFromLeveledList(leveledNodes(tree))
	pterm.DefaultTree.WithRoot(root).Render()
}

func leveledNodes(tree ast.Node) pterm.LeveledList {
	ll := pterm.LeveledList{}
	ast.Walk(tree, func(n ast.Node, depth int) bool {
		text := n.String()
		if br, ok := n.(ast.Branch); ok {
			text = fmt.Sprintf("%q", br.Op)
		}
		ll = append(ll, pterm.LeveledListItem{Level: depth, Text: text})
		return true
	})
	return ll
}
