package main

import (
	"os"
	"path/filepath"

	"github.com/reusee/bfe/cmds"
)

var programs []string

func init() {
	cmds.Positional(func(arg string) error {
		programs = append(programs, arg)
		return nil
	})

	cmds.Define("-file", cmds.Func(func(pattern string) {
		paths, err := filepath.Glob(pattern)
		if err != nil {
			// ignore
			programs = append(programs, pattern)
			return
		}
		for _, path := range paths {
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if info.IsDir() {
				continue
			}
			programs = append(programs, path)
		}
	}).Desc("add programs matching the pattern"))
}
