package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	schemelua "github.com/alttpo/scheme/lua"
	"github.com/peterh/liner"
	"github.com/yuin/gopher-lua"
)

const historyFile = ".scheme_history"

func main() {
	log.SetFlags(0)

	var (
		histPath string
		dump     bool
		script   string
	)
	home, _ := os.UserHomeDir()
	flag.StringVar(&histPath, "history", filepath.Join(home, historyFile), "history file; empty disables history")
	flag.BoolVar(&dump, "dump", false, "print values as a structure dump")
	flag.StringVar(&script, "lua", "", "run a lua script with the scheme module preloaded and exit")
	flag.Parse()

	if script != "" {
		if err := runLua(script); err != nil {
			log.Fatal(err)
		}
		return
	}

	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)

	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	r := &repl{in: ln, out: os.Stdout, dump: dump}
	err := r.run()

	if histPath != "" {
		if f, ferr := os.Create(histPath); ferr == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		} else {
			log.Printf("history: %v", ferr)
		}
	}
	ln.Close()

	if err != nil {
		log.Fatal(err)
	}
}

func runLua(path string) error {
	l := lua.NewState(lua.Options{})
	defer l.Close()
	schemelua.Preload(l)
	return l.DoFile(path)
}
