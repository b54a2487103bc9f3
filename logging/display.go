package logging

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"

	"pegen/common"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// PrintErrorMessage prints a standard Go error to the console
func PrintErrorMessage(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

// PrintWarningMessage prints a warning message to the console
func PrintWarningMessage(tag, msg string) {
	WarnStyleBG.Print(tag)
	WarnColorFG.Println(" " + msg)
}

// PrintInfoMessage prints an informational message to the user
func PrintInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// -----------------------------------------------------------------------------

// DesignMessage is an issue found in a PE description
type DesignMessage struct {
	// File is the path of the description the issue was found in
	File string

	// Kind is the human readable kind of issue (eg. "Dangling Source")
	Kind string

	// Subject is the name of the component the issue is about
	Subject string

	Message string
	IsError bool
}

func (dm *DesignMessage) isError() bool {
	return dm.IsError
}

func (dm *DesignMessage) display() {
	dm.displayBanner()
	pterm.Println(dm.Message)
}

// displayBanner displays the banner on top of all design messages
func (dm *DesignMessage) displayBanner() {
	pterm.Print("\n-- ")
	kindLen := len(dm.Kind)
	if dm.IsError {
		ErrorStyleBG.Print(dm.Kind + " Error")
		kindLen += 6
	} else {
		WarnStyleBG.Print(dm.Kind + " Warning")
		kindLen += 8
	}

	pterm.Print(" ")

	fileName := filepath.Base(dm.File)
	bannerLen := pterm.GetTerminalWidth() / 2
	if bannerLen > 50 {
		bannerLen = 50
	}

	dashCount := bannerLen - len(fileName) - kindLen - 1
	if dashCount < 2 {
		dashCount = 2
	}

	pterm.Print(strings.Repeat("-", dashCount) + " ")
	InfoColorFG.Println(fileName)
}

// ConfigMessage is an error or warning not tied to the design itself
type ConfigMessage struct {
	Kind    string
	Message string
	IsError bool
}

func (cm *ConfigMessage) isError() bool {
	return cm.IsError
}

func (cm *ConfigMessage) display() {
	if cm.IsError {
		PrintErrorMessage(cm.Kind+" Error", errors.New(cm.Message))
	} else {
		PrintWarningMessage(cm.Kind+" Warning", cm.Message)
	}
}

type fatalMessage struct {
	message string
}

func (fm *fatalMessage) isError() bool {
	return true
}

func (fm *fatalMessage) display() {
	pterm.Print("\n")
	ErrorStyleBG.Print("Fatal Error")
	ErrorColorFG.Println(" " + fm.message)
}

// -----------------------------------------------------------------------------

// displayBuildHeader displays the generator information before starting
func displayBuildHeader(action, target string) {
	pterm.Print("pegen ")
	InfoColorFG.Print("v" + common.PegenVersion)
	pterm.Print(" -- " + action + ": ")
	InfoColorFG.Println(target)
}

// displayTree renders a tree echo of input data
func displayTree(root pterm.TreeNode) {
	pterm.DefaultTree.WithRoot(root).Render()
}

// phaseSpinner stores the current phase spinner
var phaseSpinner *pterm.SpinnerPrinter
var currentPhase string
var phaseStartTime time.Time

const maxPhaseLength = len("Functional Units")

// phasePadding aligns the phase timings
func phasePadding(phase string) string {
	if len(phase) >= maxPhaseLength {
		return " "
	}

	return strings.Repeat(" ", maxPhaseLength-len(phase)+1)
}

// displayBeginPhase displays the beginning of a build phase
func displayBeginPhase(phase string) {
	currentPhase = phase
	phaseText := phase + "..." + phasePadding(phase)
	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(InfoColorFG))
	spinner.ShowTimer = false

	spinner.SuccessPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: SuccessStyleBG,
			Text:  "Done",
		},
	}

	spinner.FailPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: ErrorStyleBG,
			Text:  "Fail",
		},
	}

	// Start returns the running copy of the spinner
	phaseSpinner, _ = spinner.Start(phaseText)
	phaseStartTime = time.Now()
}

// displayEndPhase displays the end of a build phase
func displayEndPhase(success bool) {
	if phaseSpinner != nil {
		padding := phasePadding(currentPhase) + "   "
		if success {
			phaseSpinner.Success(
				currentPhase+padding,
				fmt.Sprintf("(%.3fs)", time.Since(phaseStartTime).Seconds()),
			)
		} else {
			phaseSpinner.Fail(currentPhase + padding)
		}

		phaseSpinner = nil
	}
}

// displayFinished displays a build finished message
func displayFinished(success bool, errorCount, warningCount int) {
	pterm.Print("\n")

	if success {
		SuccessColorFG.Print("All done! ")
	} else {
		ErrorColorFG.Print("Oh no! ")
	}

	pterm.Print("(")

	switch errorCount {
	case 0:
		SuccessColorFG.Print(0)
		pterm.Print(" errors, ")
	case 1:
		ErrorColorFG.Print(1)
		pterm.Print(" error, ")
	default:
		ErrorColorFG.Print(errorCount)
		pterm.Print(" errors, ")
	}

	switch warningCount {
	case 0:
		SuccessColorFG.Print(0)
		pterm.Println(" warnings)")
	case 1:
		WarnColorFG.Print(1)
		pterm.Println(" warning)")
	default:
		WarnColorFG.Print(warningCount)
		pterm.Println(" warnings)")
	}
}
