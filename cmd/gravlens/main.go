package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/lukaszgryglicki/gravlens/internal/gravlens"
)

func main() {
	gravlens.Progress = os.Getenv("QUIET") == ""
	gravlens.SerialRender = os.Getenv("SERIAL") != ""
	gravlens.RecordStates = os.Getenv("STATES") != ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := "scenes/config.json"
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := gravlens.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
