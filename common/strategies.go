package common

import (
	"os"
	"path/filepath"
)

const (
	HOME_VARIABLE    = `RPMS2SBOM_HOME`
	PRODUCT_VARIABLE = `RPMS2SBOM_PRODUCT_NAME`
	PRODUCT_NAME     = `RPM SBOM Generator`

	defaultHomeLocation = "$HOME/.rpms2sbom"
	settingsFilename    = "settings.yaml"
)

type (
	ProductStrategy interface {
		Name() string
		Home() string
		SettingsFile() string
	}

	toolStrategy struct{}
)

func ToolMode() ProductStrategy {
	return &toolStrategy{}
}

// Name is the creator tool name written into generated documents.
func (it *toolStrategy) Name() string {
	if value := os.Getenv(PRODUCT_VARIABLE); len(value) > 0 {
		return value
	}
	return PRODUCT_NAME
}

func (it *toolStrategy) Home() string {
	home := os.Getenv(HOME_VARIABLE)
	if len(home) > 0 {
		return ExpandPath(home)
	}
	return ExpandPath(defaultHomeLocation)
}

func (it *toolStrategy) SettingsFile() string {
	return filepath.Join(it.Home(), settingsFilename)
}
