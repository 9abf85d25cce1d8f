package cli

import (
	"fmt"

	"github.com/wsscc2021/aws-cost-reporter/pkg/console"
	"github.com/wsscc2021/aws-cost-reporter/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner() {
	banner := `
     _____  __      __  _____    ____            _
    /  _  \/  \    /  \/  ___/  / ___\___  ___ _| |_
   /  /_\  \   \/\/   /\___ \  / /  / _ \/ __|_   _|
  /    |    \        / /    \  \ \_| (_) \__ \ | |_
  \____|__  /\__/\  / /_____/   \____\___/|___/ \__|
          \/      \/                    R E P O R T E R
        `
	fmt.Println(console.BoldRed(banner))
	fmt.Println(console.BrightCyan(fmt.Sprintf("AWS Cost Reporter CLI (v%s)", version.FormatVersion())))
}
