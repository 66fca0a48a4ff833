package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaultAmounts() {
	var conf Config
	loadFlags(&conf)

	// Стартовый баланс 5.00 и ежедневная награда 0.25.
	s.Equal("5", conf.SignupBonus)
	s.Equal("0.25", conf.RewardAmount)
	s.Equal("10000", conf.MaxNFTPrice)

	maxNFTPrice, signupBonus, rewardAmount, err := conf.Amounts()
	s.Require().NoError(err)
	s.True(maxNFTPrice.Equal(decimal.NewFromInt(10000)))
	s.True(signupBonus.Equal(decimal.NewFromInt(5)))
	s.True(rewardAmount.Equal(decimal.RequireFromString("0.25")))
}

func (s *ConfigTestSuite) TestAmountsInvalid() {
	conf := Config{MaxNFTPrice: "10000", SignupBonus: "not-a-number", RewardAmount: "0.25"}
	_, _, _, err := conf.Amounts()
	s.Require().Error(err)
}

func (s *ConfigTestSuite) TestMergePrefersEnv() {
	envConf := Config{SignupBonus: "7.50"}
	flagsConf := Config{SignupBonus: "5", RewardAmount: "0.25"}

	merged := mergeConfig(&envConf, &flagsConf)
	s.Equal("7.50", merged.SignupBonus)
	s.Equal("0.25", merged.RewardAmount)
}
