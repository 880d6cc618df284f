package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/andybalholm/cascadia"
	"github.com/spf13/viper"
)

const (
	// DefaultRepoURL is the DrupalPod workspace definition used when none is stored.
	DefaultRepoURL = "https://git.drupalcode.org/project/drupalpod"

	appDirName = "drupalpod"
	configName = "drupalpod"
	envPrefix  = "DRUPALPOD"
)

// Settings is the runtime configuration of drupalpod.
type Settings struct {
	Repo        RepoSettings       `mapstructure:"repo"`
	DrupalOrg   DrupalOrgSettings  `mapstructure:"drupalorg"`
	HTTP        HTTPSettings       `mapstructure:"http"`
	Browser     BrowserSettings    `mapstructure:"browser"`
	Form        FormSettings       `mapstructure:"form"`
	Markers     MarkerSettings     `mapstructure:"markers"`
	Permissions PermissionSettings `mapstructure:"permissions"`
	Storage     StorageSettings    `mapstructure:"storage"`
}

// RepoSettings configures the Gitpod workspace definition repository.
type RepoSettings struct {
	Default string `mapstructure:"default"`
}

// DrupalOrgSettings configures access to Drupal.org.
type DrupalOrgSettings struct {
	APIBaseURL string        `mapstructure:"api_base_url"`
	MaxRetry   time.Duration `mapstructure:"max_retry"`
}

// HTTPSettings configures outgoing HTTP requests.
type HTTPSettings struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// BrowserSettings configures the playwright-backed page-access strategies.
type BrowserSettings struct {
	CDPURL     string        `mapstructure:"cdp_url"`
	Headless   bool          `mapstructure:"headless"`
	Install    bool          `mapstructure:"install"`
	Timeout    time.Duration `mapstructure:"timeout"`
	Strategies []string      `mapstructure:"strategies"`
}

// FormSettings holds the static option lists offered by the form.
type FormSettings struct {
	CoreVersions    []string `mapstructure:"core_versions"`
	InstallProfiles []string `mapstructure:"install_profiles"`
}

// MarkerSettings holds the CSS selectors used for presence checks.
type MarkerSettings struct {
	LoggedIn   []string `mapstructure:"logged_in"`
	PushAccess string   `mapstructure:"push_access"`
}

// PermissionSettings lists the origins page access is granted for.
type PermissionSettings struct {
	Origins []string `mapstructure:"origins"`
}

// StorageSettings locates the two storage area files.
type StorageSettings struct {
	SyncFile  string `mapstructure:"sync_file"`
	LocalFile string `mapstructure:"local_file"`
}

// NewSettings loads settings from configPath (may be empty), applying
// defaults and DRUPALPOD_* environment overrides.
func NewSettings(configPath string) (*Settings, error) {
	v := newViper()
	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}
	return decodeSettings(v)
}

// FindSettings loads the first drupalpod config file viper finds in
// searchPaths. Defaults apply when none of them holds one.
func FindSettings(searchPaths ...string) (*Settings, error) {
	v := newViper()
	v.SetConfigName(configName)
	for _, path := range searchPaths {
		v.AddConfigPath(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return decodeSettings(v)
}

// ConfigSearchPaths lists the directories searched for drupalpod.yaml.
func ConfigSearchPaths() []string {
	paths := []string{".", ".config", "configs"}
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, homeDir, filepath.Join(homeDir, ".config"), filepath.Join(homeDir, ".config", appDirName))
	}
	return paths
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decodeSettings(v *viper.Viper) (*Settings, error) {
	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	settings, err := NewSettings("")
	if err != nil {
		panic(err) // defaults are static and always valid
	}
	return settings
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("repo.default", DefaultRepoURL)
	v.SetDefault("drupalorg.api_base_url", "https://www.drupal.org")
	v.SetDefault("drupalorg.max_retry", 5*time.Second)
	v.SetDefault("http.timeout", 30*time.Second)
	v.SetDefault("http.user_agent", "drupalpod-cli")
	v.SetDefault("browser.cdp_url", "")
	v.SetDefault("browser.headless", true)
	v.SetDefault("browser.install", false)
	v.SetDefault("browser.timeout", 30*time.Second)
	v.SetDefault("browser.strategies", []string{"attached", "scripting", "fetch"})
	v.SetDefault("form.core_versions", []string{"10.3.2", "10.3.x", "11.0.1", "11.x"})
	v.SetDefault("form.install_profiles", []string{NoInstallProfile, "standard", "demo_umami", "minimal"})
	v.SetDefault("markers.logged_in", []string{".person", ".logged-in"})
	v.SetDefault("markers.push_access", ".push-access")
	v.SetDefault("permissions.origins", []string{"https://www.drupal.org"})
	v.SetDefault("storage.sync_file", defaultStoragePath(os.UserConfigDir, "sync.yaml"))
	v.SetDefault("storage.local_file", defaultStoragePath(os.UserCacheDir, "local.yaml"))
}

func defaultStoragePath(baseDir func() (string, error), name string) string {
	dir, err := baseDir()
	if err != nil {
		return filepath.Join("."+appDirName, name)
	}
	return filepath.Join(dir, appDirName, name)
}

// Validate checks for required configuration values.
func (s *Settings) Validate() error {
	if len(s.Form.CoreVersions) == 0 {
		return errors.New("form.core_versions must have at least one entry")
	}
	if len(s.Form.InstallProfiles) == 0 {
		return errors.New("form.install_profiles must have at least one entry")
	}
	if s.Form.InstallProfiles[0] != NoInstallProfile {
		return fmt.Errorf("form.install_profiles must start with %q", NoInstallProfile)
	}
	if len(s.Markers.LoggedIn) == 0 {
		return errors.New("markers.logged_in must have at least one selector")
	}
	for _, selector := range append([]string{s.Markers.PushAccess}, s.Markers.LoggedIn...) {
		if _, err := cascadia.Compile(selector); err != nil {
			return fmt.Errorf("invalid marker selector %q: %w", selector, err)
		}
	}
	if s.Storage.SyncFile == "" || s.Storage.LocalFile == "" {
		return errors.New("storage.sync_file and storage.local_file are required")
	}
	return nil
}

// AllowsOrigin reports whether page access is granted for rawURL's origin.
func (s *Settings) AllowsOrigin(rawURL string) bool {
	origin := Origin(rawURL)
	return origin != "" && slices.Contains(s.Permissions.Origins, origin)
}
