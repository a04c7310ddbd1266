package main

import (
	"fmt"

	"github.com/joshuapare/stateext/account"
	"github.com/joshuapare/stateext/internal/config"
	"github.com/joshuapare/stateext/internal/logger"
	"github.com/joshuapare/stateext/ledger"
	"github.com/joshuapare/stateext/pkg/stateext"
)

// env is everything a command needs to operate on account files.
type env struct {
	cfg    *config.Config
	layout stateext.Layout
	rent   ledger.Rent
	region *stateext.Region
}

// loadEnv builds the environment from the config the root command loaded,
// reading it directly when a run function is called without the root.
func loadEnv() (*env, error) {
	c := cfg
	if c == nil {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return nil, err
		}
		c = loaded
	}
	layout, err := c.StateLayout()
	if err != nil {
		return nil, err
	}
	rent := c.RentSchedule()
	region, err := stateext.NewRegion(layout, rent, ledger.NewBank(logger.L), stateext.WithLogger(logger.L))
	if err != nil {
		return nil, err
	}
	if c.File != "" {
		printVerbose("Using config: %s\n", c.File)
	}
	return &env{cfg: c, layout: layout, rent: rent, region: region}, nil
}

func openAccount(path string) (*account.File, error) {
	acct, err := account.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open account %s: %w", path, err)
	}
	printVerbose("Opened account: %s (%d bytes of data)\n", path, len(acct.Data()))
	return acct, nil
}
