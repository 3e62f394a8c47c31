package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

type ConfigTestSuite struct {
	suite.Suite
}

func (s *ConfigTestSuite) TestDefaults() {
	config, err := Load("")
	assert.NoError(s.T(), err)

	assert.Equal(s.T(), ":7777", config.RESTListenAddress)
	assert.Equal(s.T(), time.Second*30, config.StopTimeout)

	assert.Equal(s.T(), "", config.Challenge.ContractAddress)
	assert.Equal(s.T(), 25, config.Challenge.FetchSize)
	assert.Equal(s.T(), int64(30000), config.Challenge.PollIntervalMs)
	assert.Equal(s.T(), time.Second*30, config.Challenge.PollInterval())
	assert.Equal(s.T(), 500, config.Challenge.DedupCapacity)

	assert.Equal(s.T(), "https://api.multiversx.com", config.Gateway.Url)
	assert.Equal(s.T(), time.Second*30, config.Gateway.RequestTimeout)

	assert.Equal(s.T(), uint16(5432), config.Database.Port)
	assert.Equal(s.T(), "fitness", config.Database.Name)
}

func (s *ConfigTestSuite) TestValidateRequiresContractAddress() {
	config, err := Load("")
	assert.NoError(s.T(), err)
	assert.ErrorIs(s.T(), config.Validate(), ErrContractAddressRequired)

	config.Challenge.ContractAddress = "   "
	assert.ErrorIs(s.T(), config.Validate(), ErrContractAddressRequired)

	config.Challenge.ContractAddress = "erd1contract"
	assert.NoError(s.T(), config.Validate())
}

func (s *ConfigTestSuite) TestEnvironmentAliases() {
	s.T().Setenv("CHALLENGE_CONTRACT_ADDRESS", "erd1contract")
	s.T().Setenv("TX_FETCH_SIZE", "50")
	s.T().Setenv("TX_POLL_INTERVAL_MS", "-1")

	config, err := Load("")
	assert.NoError(s.T(), err)
	assert.NoError(s.T(), config.Validate())

	assert.Equal(s.T(), "erd1contract", config.Challenge.ContractAddress)
	assert.Equal(s.T(), 50, config.Challenge.FetchSize)
	assert.Equal(s.T(), int64(-1), config.Challenge.PollIntervalMs)
}

func (s *ConfigTestSuite) TestGeneratedEnvironmentNames() {
	s.T().Setenv("ARCHIVER_LOG_LEVEL", "INFO")
	s.T().Setenv("ARCHIVER_CHALLENGE_DEDUP_CAPACITY", "100")

	config, err := Load("")
	assert.NoError(s.T(), err)

	assert.Equal(s.T(), "INFO", config.LogLevel)
	assert.Equal(s.T(), 100, config.Challenge.DedupCapacity)
}

func (s *ConfigTestSuite) TestGatewayUrlTrailingSlashIsStripped() {
	s.T().Setenv("GATEWAY_API_URL", "https://gateway.example.com/")

	config, err := Load("")
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "https://gateway.example.com", config.Gateway.Url)
}
