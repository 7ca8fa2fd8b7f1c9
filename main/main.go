package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/skymaps/checkcls/cls"
	"github.com/skymaps/checkcls/compare"
	"github.com/skymaps/checkcls/flask"
	"github.com/skymaps/checkcls/io"
	"github.com/skymaps/checkcls/pixwin"
	"github.com/skymaps/checkcls/plot"
)

// options are the parsed command line arguments.
type options struct {
	settingsFile    string
	exampleSettings bool
	configPath      string
}

// parseArgs parses the command line. Help requests come back as
// flag.ErrHelp; main treats every parse error, help included, as a failed
// run (POSIX failure convention).
func parseArgs(args []string) (*options, error) {
	fs := flag.NewFlagSet("checkcls", flag.ContinueOnError)
	opt := &options{}
	fs.StringVar(
		&opt.settingsFile, "Settings", "",
		"Optional [CheckCls] settings file. Run with -ExampleSettings to "+
			"print an example.",
	)
	fs.BoolVar(
		&opt.exampleSettings, "ExampleSettings", false,
		"Print an example settings file to stdout and exit.",
	)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			"USAGE: %s [-Settings settings.ini] </path/to/flask.config>\n"+
				"Plots Flask RecovCls compared to the input theory.\n"+
				"Plots can be found in a new folder called "+
				"'check_RecovCls-<configname>' in the same directory as "+
				"the .config.\n", fs.Name(),
		)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opt.exampleSettings {
		return opt, nil
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, fmt.Errorf("expected exactly one config file argument")
	}
	opt.configPath = fs.Arg(0)

	return opt, nil
}

func main() {
	opt, err := parseArgs(os.Args[1:])
	if err != nil {
		// The usage text was already printed, for -h included.
		os.Exit(1)
	}

	if opt.exampleSettings {
		fmt.Println(io.ExampleSettingsFile)
		return
	}
	configPath := opt.configPath

	wrap := io.DefaultCheckClsWrapper()
	if opt.settingsFile != "" {
		if err := gcfg.ReadFileInto(wrap, opt.settingsFile); err != nil {
			log.Fatal(err.Error())
		}
	}
	con := &wrap.CheckCls
	if !con.ValidBackend() {
		log.Fatalf("Invalid 'Backend' value '%s'.", con.Backend)
	} else if !con.ValidFracErrLim() {
		log.Fatal("Invalid 'FracErrLim' value.")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatal("Cannot find the config file!")
	}

	// Tries to create a folder in the same dir as the .config. If that
	// fails, creates it in the current directory.
	outDir, err := io.CreateOutputFolder(configPath)
	if err != nil {
		log.Fatal(err.Error())
	}

	cfg, err := flask.ReadFile(configPath)
	if err != nil {
		log.Fatal(err.Error())
	}

	recovPath, ok := cfg.Path("RECOVCLS_OUT")
	if !ok {
		log.Fatal("No recovCls were calculated by Flask.\n" +
			"Diagnosis cannot be performed!\nExiting...")
	}
	recov, err := cls.ReadRecov(recovPath)
	if err != nil {
		log.Fatal(err.Error())
	}

	prefix, ok := cfg.Path("CL_PREFIX")
	if !ok {
		log.Fatal("No input cls in the Flask config!\n" +
			"Diagnosis cannot be performed!\nExiting...")
	}
	input, missing, err := cls.ReadInput(prefix, recov.Fields())
	if err != nil {
		log.Fatal(err.Error())
	}
	if len(missing) > 0 {
		if con.Strict {
			log.Fatalf(
				"No input cl files found for: %s.",
				strings.Join(missing, ", "),
			)
		}
		log.Printf(
			"Warning: no input cl files found for: %s. These fields are "+
				"skipped.", strings.Join(missing, ", "),
		)
	}
	if len(input.Cls) == 0 {
		log.Fatal("None of the recovered spectra have a matching input " +
			"cl file.")
	}

	var ellMin, ellMax float64
	if !cls.SameEllRange(recov, input) {
		ellMin, ellMax = cls.Overlap(recov, input)
		fmt.Println("Using the following range:", ellMin, ellMax)
	} else {
		ellMin, _ = recov.EllRange()
		_, ellMax = input.EllRange()
	}

	var pixWin2 []float64
	if cfg.ApplyPixWin() {
		fmt.Println("Flask simulation using pixel window function. " +
			"Will apply corrections...")
		nside, err := cfg.NSide()
		if err != nil {
			log.Fatal(err.Error())
		}
		dir := con.PixWinDir
		if !con.ValidPixWinDir() {
			dir = cfg.Dir()
		}
		w, err := pixwin.Load(dir, nside)
		if err != nil {
			log.Fatal(err.Error())
		}
		pixWin2, err = w.Squared(int(ellMin), int(ellMax))
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	results, err := compare.Compare(recov, input, pixWin2, ellMin, ellMax)
	if err != nil {
		log.Fatal(err.Error())
	}

	renderer, err := plot.NewRenderer(con.Backend)
	if err != nil {
		log.Fatal(err.Error())
	}
	opt := plot.Options{
		OutDir:     outDir,
		Show:       con.Show,
		FracErrLim: con.FracErrLim,
	}
	for _, res := range results {
		if err := renderer.Render(res, opt); err != nil {
			log.Fatal(err.Error())
		}
	}
	if err := renderer.Finish(); err != nil {
		log.Fatal(err.Error())
	}

	fmt.Printf("Wrote %d figure pairs to %s\n", len(results), outDir)
}
