package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pelletier/go-toml/v2"

	"github.com/GPTx-global/oev-relay/oevd/log"
)

// FileName is the config file created under the home directory.
const FileName = "config.toml"

const (
	OutputText = "text"
	OutputJSON = "json"
)

var (
	globalConfig configData
	home         string
	mu           sync.Mutex
)

type configData struct {
	Chain  chainConfig  `toml:"chain"`
	Signer signerConfig `toml:"signer"`
	Bid    bidConfig    `toml:"bid"`
	Output outputConfig `toml:"output"`
	Log    logConfig    `toml:"log"`
}

type chainConfig struct {
	Bech32Prefix string `toml:"bech32_prefix"`
}

type signerConfig struct {
	KeyFile string `toml:"key_file"`
}

type bidConfig struct {
	Denom    string `toml:"denom"`
	Validity uint64 `toml:"validity"`
}

type outputConfig struct {
	Format string `toml:"format"`
}

type logConfig struct {
	ToFile  bool `toml:"to_file"`
	Verbose bool `toml:"verbose"`
}

// DefaultHome returns ~/.oevd.
func DefaultHome() string {
	osHome, err := os.UserHomeDir()
	if err != nil {
		return ".oevd"
	}
	return filepath.Join(osHome, ".oevd")
}

// Load reads <dir>/config.toml, writing the defaults first when the file does
// not exist.
func Load(dir string) error {
	mu.Lock()
	defer mu.Unlock()

	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfig(dir, path); err != nil {
			return fmt.Errorf("failed to create default config: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded configData
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to parse TOML: %w", err)
	}

	if err := validateConfig(loaded); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	globalConfig = loaded
	home = dir
	log.Debugf("Loaded config from %s", path)
	return nil
}

func defaultConfig(dir string) configData {
	return configData{
		Chain: chainConfig{
			Bech32Prefix: "guru",
		},
		Signer: signerConfig{
			KeyFile: filepath.Join(dir, "oracle.key"),
		},
		Bid: bidConfig{
			Denom:    "aguru",
			Validity: 60,
		},
		Output: outputConfig{
			Format: OutputText,
		},
		Log: logConfig{
			ToFile:  false,
			Verbose: false,
		},
	}
}

func createDefaultConfig(dir, path string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := toml.Marshal(defaultConfig(dir))
	if err != nil {
		return fmt.Errorf("failed to marshal TOML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func validateConfig(c configData) error {
	if c.Chain.Bech32Prefix == "" {
		return fmt.Errorf("bech32 prefix is required")
	}

	if err := sdk.ValidateDenom(c.Bid.Denom); err != nil {
		return fmt.Errorf("bid denom: %w", err)
	}

	if c.Bid.Validity == 0 {
		return fmt.Errorf("bid validity is required")
	}

	switch c.Output.Format {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}

	return nil
}

func Print() {
	log.Infof("%-15s: %s", "Home", Home())
	log.Infof("%-15s: %s", "Bech32 Prefix", Bech32Prefix())
	log.Infof("%-15s: %s", "Key File", KeyFile())
	log.Infof("%-15s: %s", "Bid Denom", BidDenom())
	log.Infof("%-15s: %ds", "Bid Validity", BidValidity())
	log.Infof("%-15s: %s", "Output", OutputFormat())
	log.Infof("%-15s: %t", "Log To File", LogToFile())
}

func Home() string {
	mu.Lock()
	defer mu.Unlock()

	return home
}

func Bech32Prefix() string {
	mu.Lock()
	defer mu.Unlock()

	return globalConfig.Chain.Bech32Prefix
}

func KeyFile() string {
	mu.Lock()
	defer mu.Unlock()

	return globalConfig.Signer.KeyFile
}

func BidDenom() string {
	mu.Lock()
	defer mu.Unlock()

	return globalConfig.Bid.Denom
}

// BidValidity is the default number of seconds a signed bid stays valid.
func BidValidity() uint64 {
	mu.Lock()
	defer mu.Unlock()

	return globalConfig.Bid.Validity
}

func OutputFormat() string {
	mu.Lock()
	defer mu.Unlock()

	return globalConfig.Output.Format
}

func LogToFile() bool {
	mu.Lock()
	defer mu.Unlock()

	return globalConfig.Log.ToFile
}

func Verbose() bool {
	mu.Lock()
	defer mu.Unlock()

	return globalConfig.Log.Verbose
}

func SetForTesting(dir, bech32Prefix, keyFile, denom, output string, validity uint64) {
	mu.Lock()
	defer mu.Unlock()

	home = dir
	globalConfig = configData{
		Chain: chainConfig{
			Bech32Prefix: bech32Prefix,
		},
		Signer: signerConfig{
			KeyFile: keyFile,
		},
		Bid: bidConfig{
			Denom:    denom,
			Validity: validity,
		},
		Output: outputConfig{
			Format: output,
		},
	}
}
