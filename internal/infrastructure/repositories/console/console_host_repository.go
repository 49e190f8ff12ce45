package console

import (
	logger "github.com/sirupsen/logrus"
)

const hostName = "console"

// ConsoleHostRepository reports host side effects in the log when no CI host is present.
type ConsoleHostRepository struct {
	variables map[string]string
}

// NewHostRepository creates a console host.
func NewHostRepository() *ConsoleHostRepository {
	return &ConsoleHostRepository{variables: make(map[string]string)}
}

func (r *ConsoleHostRepository) Name() string { return hostName }

func (r *ConsoleHostRepository) SetVariable(name, value string) error {
	r.variables[name] = value
	logger.Infof("%s: %s", name, value)
	return nil
}

func (r *ConsoleHostRepository) UpdateBuildNumber(value string) error {
	logger.Infof("Build number: %s", value)
	return nil
}

func (r *ConsoleHostRepository) AddBuildTag(value string) error {
	logger.Infof("Build tag: %s", value)
	return nil
}

// Variable returns the last value published under name.
func (r *ConsoleHostRepository) Variable(name string) (string, bool) {
	value, ok := r.variables[name]
	return value, ok
}
