package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .folio.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to folio! Let's configure your portfolio.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:   "Port to serve on",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil {
				return fmt.Errorf("not a number")
			}
			if n <= 0 || n > 65535 {
				return fmt.Errorf("must be between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 2. Data directory.
	dataPrompt := promptui.Prompt{
		Label:   "Directory for portfolio data",
		Default: cfg.DataDir,
	}
	if cfg.DataDir, err = dataPrompt.Run(); err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	// 3. Assets directory.
	assetsPrompt := promptui.Prompt{
		Label:   "Directory for images and static assets",
		Default: cfg.AssetsDir,
	}
	if cfg.AssetsDir, err = assetsPrompt.Run(); err != nil {
		return nil, fmt.Errorf("assets dir: %w", err)
	}

	// 4. Export directory.
	exportPrompt := promptui.Prompt{
		Label:   "Directory for static export",
		Default: cfg.ExportDir,
	}
	if cfg.ExportDir, err = exportPrompt.Run(); err != nil {
		return nil, fmt.Errorf("export dir: %w", err)
	}

	// 5. Dev mode.
	devPrompt := promptui.Select{
		Label: "Enable edit mode on this machine",
		Items: []string{"yes", "no"},
	}
	devIdx, _, err := devPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("dev mode: %w", err)
	}
	cfg.DevMode = devIdx == 0

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Save to .folio.yml.
	configPath := ".folio.yml"
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	if cfg.DevMode {
		fmt.Println("Run folio serve and open /api/portfolio to get started.")
	}
	return cfg, nil
}
