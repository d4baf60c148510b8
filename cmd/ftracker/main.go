package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/ftracker/internal/sensor"
	"github.com/claude/ftracker/internal/workout"
)

// defaultPackages is the demo batch processed when no sensor log is
// given on the command line.
var defaultPackages = []sensor.Package{
	{Type: sensor.CodeSwimming, Data: []float64{720, 1, 80, 25, 40}},
	{Type: sensor.CodeRunning, Data: []float64{15000, 1, 75}},
	{Type: sensor.CodeWalking, Data: []float64{9000, 1, 75, 180}},
}

func main() {
	inputPath := flag.String("input", "", "path to a YAML sensor log (default: built-in demo batch)")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	packages := defaultPackages
	if *inputPath != "" {
		sensorLog, err := sensor.LoadLog(*inputPath)
		if err != nil {
			log.Error("failed to load sensor log", "error", err)
			os.Exit(1)
		}
		packages = sensorLog.Packages
		log.Info("sensor log loaded", "path", *inputPath, "packages", len(packages))
	}

	// Records are processed in order; the first bad record aborts the
	// rest of the batch.
	for i, p := range packages {
		training, err := sensor.ReadPackage(p)
		if err != nil {
			log.Error("failed to read package", "index", i, "type", p.Type, "error", err)
			os.Exit(1)
		}
		fmt.Println(workout.Info(training).Message())
	}
}
