package settings_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/joshyorko/rpms2sbom/common"
	"github.com/joshyorko/rpms2sbom/hamlet"
	"github.com/joshyorko/rpms2sbom/settings"
	"github.com/joshyorko/rpms2sbom/xviper"
)

func TestThatSomeDefaultValuesAreVisible(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)
	xviper.Reset()
	t.Setenv("RPMS2SBOM_HOME", t.TempDir())
	t.Setenv(common.PRODUCT_VARIABLE, "")

	sut, err := settings.SummonSettings("")
	must_be.Nil(err)
	wont_be.Nil(sut)
	wont_be.Nil(settings.Global)

	must_be.Equal("sbom.json", settings.Global.Output)
	must_be.Equal("https://rpm.sbom.example.com", settings.Global.Namespace)
	must_be.Equal("RPM SBOM Manifest", settings.Global.DocumentName)
	must_be.Equal("RPM SBOM Generator", settings.Global.CreatorTool)
	must_be.Equal("rpm", settings.Global.Reader)
	must_be.Equal("rpm", settings.Global.RpmCommand)
	must_be.Equal(time.Duration(0), settings.Global.RpmTimeout)
	must_be.Equal("abort", settings.Global.OnError)
	must_be.Equal(1, settings.Global.Workers)
	must_be.Equal(".rpm", settings.Global.Suffix)
	must_be.True(!settings.Global.SkipOnError())
	wont_be.Equal("", settings.Global.SupplierName())
}

func TestEmbeddedDefaultsMatchKeys(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	defaults, err := settings.Defaults()
	must_be.Nil(err)
	must_be.Nil(defaults.Validate())

	blob, err := defaults.AsYaml()
	must_be.Nil(err)
	for _, key := range settings.Keys() {
		must_be.True(strings.Contains(string(blob), key+":"))
	}
}

func TestSettingsFileAndEnvironmentOverride(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)
	xviper.Reset()

	filename := filepath.Join(t.TempDir(), "custom.yaml")
	must_be.Nil(os.WriteFile(filename, []byte("on_error: skip\nsupplier: release-team\nrpm_timeout: 30s\n"), 0o644))
	t.Setenv("RPMS2SBOM_WORKERS", "4")

	sut, err := settings.SummonSettings(filename)
	must_be.Nil(err)
	must_be.True(sut.SkipOnError())
	must_be.Equal("release-team", sut.SupplierName())
	must_be.Equal(30*time.Second, sut.RpmTimeout)
	must_be.Equal(4, sut.Workers)
}

func TestExplicitMissingFileFails(t *testing.T) {
	_, wont_be := hamlet.Specifications(t)
	xviper.Reset()

	_, err := settings.SummonSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	wont_be.Nil(err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*settings.Settings)
	}{
		{"reader", func(it *settings.Settings) { it.Reader = "dpkg" }},
		{"on_error", func(it *settings.Settings) { it.OnError = "retry" }},
		{"workers", func(it *settings.Settings) { it.Workers = 0 }},
		{"timeout", func(it *settings.Settings) { it.RpmTimeout = -time.Second }},
		{"output", func(it *settings.Settings) { it.Output = "" }},
		{"suffix", func(it *settings.Settings) { it.Suffix = " " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sut, err := settings.Defaults()
			if err != nil {
				t.Fatalf("Defaults() error = %v", err)
			}
			tt.mutate(sut)
			if sut.Validate() == nil {
				t.Errorf("Validate() accepted %+v", sut)
			}
		})
	}
}

func TestUniqueNamespaceIsOptIn(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut, err := settings.Defaults()
	must_be.Nil(err)
	must_be.Equal("https://rpm.sbom.example.com", sut.DocumentNamespace())

	sut.Unique = true
	must_be.True(strings.HasPrefix(sut.DocumentNamespace(), "https://rpm.sbom.example.com/RPM-SBOM-Manifest-"))
}

func TestCreatorToolFollowsProductName(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)
	xviper.Reset()
	t.Setenv("RPMS2SBOM_HOME", t.TempDir())
	t.Setenv(common.PRODUCT_VARIABLE, "Acme Release Scanner")

	sut, err := settings.SummonSettings("")
	must_be.Nil(err)
	must_be.Equal("Acme Release Scanner", sut.CreatorTool)

	defaults, err := settings.Defaults()
	must_be.Nil(err)
	must_be.Equal("Acme Release Scanner", defaults.CreatorTool)

	xviper.Reset()
	filename := filepath.Join(t.TempDir(), "named.yaml")
	must_be.Nil(os.WriteFile(filename, []byte("creator_tool: In House Tool\n"), 0o644))
	sut, err = settings.SummonSettings(filename)
	must_be.Nil(err)
	must_be.Equal("In House Tool", sut.CreatorTool)
}
