package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads Options from a YAML file. An empty path yields the defaults;
// unknown keys are rejected so typos do not go unnoticed.
//
//	crontab_command: /usr/bin/crontab
//	shell_interpreter: /bin/bash
//	python_interpreter: /usr/bin/env python3
//	command_timeout: 30s
//	log_level: debug
//	log_file: /tmp/cron-manager.log
func LoadFile(path string) (Options, error) {
	if path == "" {
		return DefaultOptions(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var opts Options
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return opts.WithDefaults(), nil
}
