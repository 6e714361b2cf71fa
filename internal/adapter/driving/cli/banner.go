package cli

import (
	"fmt"
	"io"

	"github.com/diillson/aws-cost-report-go/pkg/console"
	"github.com/diillson/aws-cost-report-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(out io.Writer) {
	banner := `
   ___          _     ___                       _
  / __|___  ___| |_  | _ \___ _ __  ___ _ _| |_
 | (__/ _ \(_-<  _| |   / -_) '_ \/ _ \ '_|  _|
  \___\___//__/\__| |_|_\___| .__/\___/_|  \__|
                            |_|
`
	fmt.Fprintln(out, console.BoldRed(banner))
	fmt.Fprintln(out, console.BrightBlue(fmt.Sprintf("AWS Cost Report (v%s)", version.FormatVersion())))
}
