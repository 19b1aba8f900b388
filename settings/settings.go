package settings

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/joshyorko/rpms2sbom/common"
	"github.com/joshyorko/rpms2sbom/sbom"
	"github.com/joshyorko/rpms2sbom/xviper"
	"gopkg.in/yaml.v2"
)

const (
	OnErrorAbort = "abort"
	OnErrorSkip  = "skip"
	ReaderRpm    = "rpm"
	ReaderNative = "native"
)

var (
	//go:embed defaults.yaml
	defaultSettings []byte

	Global *Settings
)

type Settings struct {
	Output       string        `yaml:"output"`
	Namespace    string        `yaml:"namespace"`
	DocumentName string        `yaml:"document_name"`
	CreatorTool  string        `yaml:"creator_tool"`
	Supplier     string        `yaml:"supplier"`
	Reader       string        `yaml:"reader"`
	RpmCommand   string        `yaml:"rpm_command"`
	RpmTimeout   time.Duration `yaml:"rpm_timeout"`
	OnError      string        `yaml:"on_error"`
	Workers      int           `yaml:"workers"`
	Suffix       string        `yaml:"suffix"`
	Unique       bool          `yaml:"unique_namespace"`
}

// Keys lists every setting in file order.
func Keys() []string {
	return []string{
		"output", "namespace", "document_name", "creator_tool", "supplier",
		"reader", "rpm_command", "rpm_timeout", "on_error", "workers", "suffix",
		"unique_namespace",
	}
}

func Defaults() (*Settings, error) {
	result := &Settings{}
	err := yaml.Unmarshal(defaultSettings, result)
	if err != nil {
		return nil, fmt.Errorf("embedded default settings are broken: %w", err)
	}
	result.fillCreatorTool()
	return result, nil
}

// fillCreatorTool falls back to the product name, which the environment
// may override.
func (it *Settings) fillCreatorTool() {
	if len(strings.TrimSpace(it.CreatorTool)) == 0 {
		it.CreatorTool = common.ToolMode().Name()
	}
}

func registerDefaults() error {
	raw := make(map[string]interface{})
	err := yaml.Unmarshal(defaultSettings, &raw)
	if err != nil {
		return err
	}
	for key, value := range raw {
		xviper.SetDefault(key, value)
	}
	return nil
}

// SummonSettings resolves defaults, settings file, environment and flags
// into Global. configFile may be empty, then the product home is used.
func SummonSettings(configFile string) (*Settings, error) {
	err := registerDefaults()
	if err != nil {
		return nil, err
	}
	explicit := len(configFile) > 0
	if !explicit {
		configFile = common.ToolMode().SettingsFile()
	}
	err = xviper.Load(configFile, explicit)
	if err != nil {
		return nil, fmt.Errorf("reading settings %q failed: %w", configFile, err)
	}
	result := &Settings{
		Output:       xviper.GetString("output"),
		Namespace:    xviper.GetString("namespace"),
		DocumentName: xviper.GetString("document_name"),
		CreatorTool:  xviper.GetString("creator_tool"),
		Supplier:     xviper.GetString("supplier"),
		Reader:       strings.ToLower(strings.TrimSpace(xviper.GetString("reader"))),
		RpmCommand:   xviper.GetString("rpm_command"),
		RpmTimeout:   xviper.GetDuration("rpm_timeout"),
		OnError:      strings.ToLower(strings.TrimSpace(xviper.GetString("on_error"))),
		Workers:      xviper.GetInt("workers"),
		Suffix:       xviper.GetString("suffix"),
		Unique:       xviper.GetBool("unique_namespace"),
	}
	result.fillCreatorTool()
	err = result.Validate()
	if err != nil {
		return nil, err
	}
	Global = result
	return result, nil
}

func (it *Settings) Validate() error {
	switch it.Reader {
	case ReaderRpm, ReaderNative:
	default:
		return fmt.Errorf("setting reader must be %q or %q, not %q", ReaderRpm, ReaderNative, it.Reader)
	}
	switch it.OnError {
	case OnErrorAbort, OnErrorSkip:
	default:
		return fmt.Errorf("setting on_error must be %q or %q, not %q", OnErrorAbort, OnErrorSkip, it.OnError)
	}
	if it.Workers < 1 {
		return fmt.Errorf("setting workers must be at least 1, not %d", it.Workers)
	}
	if it.RpmTimeout < 0 {
		return fmt.Errorf("setting rpm_timeout must not be negative, not %v", it.RpmTimeout)
	}
	if len(strings.TrimSpace(it.Output)) == 0 {
		return fmt.Errorf("setting output must not be empty")
	}
	if len(strings.TrimSpace(it.Suffix)) == 0 {
		return fmt.Errorf("setting suffix must not be empty")
	}
	return nil
}

// SupplierName is the configured supplier, or the invoking user.
func (it *Settings) SupplierName() string {
	if len(strings.TrimSpace(it.Supplier)) > 0 {
		return it.Supplier
	}
	return common.LoginName()
}

// DocumentNamespace is the namespace for a new document.
func (it *Settings) DocumentNamespace() string {
	if it.Unique {
		return sbom.UniqueNamespace(it.Namespace, it.DocumentName)
	}
	return it.Namespace
}

func (it *Settings) SkipOnError() bool {
	return it.OnError == OnErrorSkip
}

func (it *Settings) AsYaml() ([]byte, error) {
	return yaml.Marshal(it)
}
