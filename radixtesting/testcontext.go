package radixtesting

import (
	"math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

type TestContext struct {
	Log  logger.Logger
	Rand *rand.Rand
	T    *testing.T
}

type TestConfig struct {
	// The RNG used for generated trees is seeded from Seed. It is normal to
	// force it to some fixed value so that the generated trees are the same
	// from run to run.
	Seed            int64
	TestLabelPrefix string
	LogLevel        string // defaults to INFO
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T:    t,
		Rand: rand.New(rand.NewSource(cfg.Seed)),
	}

	level := cfg.LogLevel
	if level == "" {
		level = "INFO"
	}
	logger.New(level)
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }
