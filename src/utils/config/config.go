package config

import (
	"bytes"
	"errors"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/iancoleman/strcase"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

var ErrContractAddressRequired = errors.New("challenge contract address is not configured")

// Config stores global configuration
type Config struct {
	// Is development mode on
	IsDevelopment bool

	// REST API address. API used for monitoring etc.
	RESTListenAddress string

	// Maximum time the service will be closing before stop is forced.
	StopTimeout time.Duration

	// Logging level
	LogLevel string

	Challenge Challenge
	Gateway   Gateway
	Database  Database
}

func setDefaults() {
	viper.SetDefault("IsDevelopment", "false")
	viper.SetDefault("RESTListenAddress", ":7777")
	viper.SetDefault("LogLevel", "DEBUG")
	viper.SetDefault("StopTimeout", "30s")

	setChallengeDefaults()
	setGatewayDefaults()
	setDatabaseDefaults()
}

// Environment variables recognized by the original deployment.
// Bound on top of the generated ARCHIVER_* names.
func bindAliases() {
	for key, env := range map[string]string{
		"Challenge.ContractAddress": "CHALLENGE_CONTRACT_ADDRESS",
		"Challenge.FetchSize":       "TX_FETCH_SIZE",
		"Challenge.PollIntervalMs":  "TX_POLL_INTERVAL_MS",
		"Gateway.Url":               "GATEWAY_API_URL",
	} {
		err := viper.BindEnv(key, env)
		if err != nil {
			panic(err)
		}
	}
}

func Default() (config *Config) {
	config, _ = Load("")
	return
}

// Visits every field and registers an upper snake case ENV name for it.
// Works with embedded structs.
func BindEnv(path []string, val reflect.Value) {
	if val.Kind() != reflect.Struct {
		// Base types
		key := strings.Join(path, ".")
		env := "ARCHIVER_" + strcase.ToScreamingSnake(strings.Join(path, "_"))
		err := viper.BindEnv(key, env)
		if err != nil {
			panic(err)
		}
	} else {
		// Iterates over struct fields
		for i := 0; i < val.NumField(); i++ {
			newPath := make([]string, len(path))
			copy(newPath, path)
			newPath = append(newPath, val.Type().Field(i).Name)
			BindEnv(newPath, val.Field(i))
		}
	}
}

func defaultDecoderConfig(output interface{}) *mapstructure.DecoderConfig {
	c := &mapstructure.DecoderConfig{
		Metadata:         nil,
		Result:           output,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	}
	return c
}

// Load configuration from file and env
func Load(filename string) (config *Config, err error) {
	viper.SetConfigType("json")

	setDefaults()

	BindEnv([]string{}, reflect.ValueOf(Config{}))
	bindAliases()

	// Empty filename means we use default values
	if filename != "" {
		var content []byte
		/* #nosec */
		content, err = os.ReadFile(filename)
		if err != nil {
			return nil, err
		}

		err = viper.ReadConfig(bytes.NewBuffer(content))
		if err != nil {
			return nil, err
		}
	}

	config = new(Config)
	err = viper.Unmarshal(&config, func(c *mapstructure.DecoderConfig) {
		*c = *defaultDecoderConfig(c.Result)
	})
	if err != nil {
		return nil, err
	}

	config.Gateway.Url = strings.TrimRight(config.Gateway.Url, "/")

	return
}

// Checks options that have no sane default.
// Called by commands that actually need them, not by Load.
func (self *Config) Validate() (err error) {
	if strings.TrimSpace(self.Challenge.ContractAddress) == "" {
		return ErrContractAddressRequired
	}
	return nil
}
