package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ComedicChimera/olive"

	"pegen/build"
	"pegen/common"
	"pegen/config"
	"pegen/load"
	"pegen/logging"
)

// subcommands are the names of all subcommands of the CLI
var subcommands = map[string]struct{}{
	"build":   {},
	"check":   {},
	"new":     {},
	"init":    {},
	"version": {},
	"help":    {},
}

// Execute runs the main `pegen` application and returns its exit status
func Execute() int {
	return ExecuteArgs(os.Args)
}

// ExecuteArgs runs `pegen` on the given command line (including the program
// name) and returns the exit status
func ExecuteArgs(args []string) int {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("pegen", "pegen generates Verilog modules from PE datapath descriptions", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the generator log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	buildCmd := cli.AddSubcommand("build", "generate the Verilog module of a PE", true)
	buildCmd.AddPrimaryArg("description", "the path to the PE description", true)
	buildCmd.AddStringArg("output-dir", "o", "the directory to write the module to", false)
	buildCmd.AddStringArg("extension", "e", "the file extension of the module", false)
	buildCmd.AddFlag("strict", "s", "treat design issues as errors")

	checkCmd := cli.AddSubcommand("check", "check a PE description without generating anything", true)
	checkCmd.AddPrimaryArg("description", "the path to the PE description", true)
	checkCmd.AddFlag("strict", "s", "treat design issues as errors")

	newCmd := cli.AddSubcommand("new", "create a new PE description", true)
	newCmd.AddPrimaryArg("name", "the name of the PE", true)
	newCmd.AddSelectorArg("format", "f", "the format of the description", false, []string{"json", "toml", "yaml"}).SetDefaultValue("json")

	cli.AddSubcommand("init", "create a project file in the working directory", false)
	cli.AddSubcommand("version", "print the pegen version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, normalizeArgs(args))
	if err != nil {
		logging.PrintErrorMessage("CLI Usage Error", err)
		return 1
	}

	loglevel, _ := result.Arguments["loglevel"].(string)

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		return execBuildCommand(subResult, loglevel, false)
	case "check":
		return execBuildCommand(subResult, loglevel, true)
	case "new":
		return execNewCommand(subResult)
	case "init":
		return execInitCommand()
	case "version":
		logging.PrintInfoMessage("pegen Version", common.PegenVersion)
	}

	return 0
}

// execBuildCommand executes the build and check subcommands and handles all
// errors
func execBuildCommand(result *olive.ArgParseResult, loglevel string, checkOnly bool) int {
	// initialize the logger
	logging.Initialize(loglevel)

	descPath, _ := result.PrimaryArg()

	workDir, err := os.Getwd()
	if err != nil {
		logging.PrintErrorMessage("Path Error", err)
		return 1
	}

	conf, err := config.LoadConfig(workDir)
	if err != nil {
		logging.PrintErrorMessage("Config Error", err)
		return 1
	}

	// command line options override the project file
	if dir, ok := stringArg(result, "output-dir"); ok {
		conf.OutputDir = dir
	}

	if ext, ok := stringArg(result, "extension"); ok {
		conf.Extension = ext
	}

	if result.HasFlag("strict") {
		conf.Strict = true
	}

	action := "build"
	if checkOnly {
		action = "check"
	}
	logging.DisplayHeader(action, filepath.Base(descPath))

	c := build.NewCompiler(descPath, conf)
	if checkOnly {
		c.Analyze()
	} else {
		c.Compile()
	}

	logging.Finish()

	if logging.ShouldProceed() {
		return 0
	}

	return 1
}

// execNewCommand executes the `new` subcommand
func execNewCommand(result *olive.ArgParseResult) int {
	name, _ := result.PrimaryArg()

	formatName, _ := result.Arguments["format"].(string)
	format, ok := load.ParseFormat(formatName)
	if !ok {
		format = load.FormatJSON
	}

	workDir, err := os.Getwd()
	if err != nil {
		logging.PrintErrorMessage("Path Error", err)
		return 1
	}

	path, err := load.WriteSkeleton(workDir, name, format)
	if err != nil {
		logging.PrintErrorMessage("Description Error", err)
		return 1
	}

	logging.PrintInfoMessage("Created", path)
	return 0
}

// execInitCommand executes the `init` subcommand
func execInitCommand() int {
	workDir, err := os.Getwd()
	if err != nil {
		logging.PrintErrorMessage("Path Error", err)
		return 1
	}

	path, err := config.InitConfig(config.ProjectName(workDir), workDir)
	if err != nil {
		logging.PrintErrorMessage("Project Init Error", err)
		return 1
	}

	logging.PrintInfoMessage("Created", path)
	return 0
}

// -----------------------------------------------------------------------------

// normalizeArgs rewrites the shorthand `pegen <file>` into `pegen build <file>`.
// Global options before the description path are preserved.
func normalizeArgs(args []string) []string {
	for i := 1; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") {
			// the log level is the only global option taking a separate value
			if (arg == "--loglevel" || arg == "-ll") && i+1 < len(args) {
				i++
			}

			continue
		}

		if _, ok := subcommands[arg]; ok {
			return args
		}

		normalized := make([]string, 0, len(args)+1)
		normalized = append(normalized, args[:i]...)
		normalized = append(normalized, "build")
		return append(normalized, args[i:]...)
	}

	return args
}

// stringArg returns the value of a non-empty string argument
func stringArg(result *olive.ArgParseResult, name string) (string, bool) {
	if value, ok := result.Arguments[name]; ok {
		if s, ok := value.(string); ok && s != "" {
			return s, true
		}
	}

	return "", false
}
