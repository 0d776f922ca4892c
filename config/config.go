package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"histpad/history"
)

type Config struct {
	// Capacity is the per-field history size. Zero means the default.
	Capacity int     `json:"capacity"`
	Fields   []Field `json:"fields"`
}

type Field struct {
	Name   string `json:"name"`
	Prompt string `json:"prompt"`
	// History marks the field as history-enabled; unmarked fields are
	// plain inputs.
	History bool `json:"history"`
}

// Default is the pad used when no config file is present.
func Default() Config {
	return Config{
		Capacity: history.DefaultCap,
		Fields: []Field{
			{Name: "main", Prompt: "(histpad) ", History: true},
			{Name: "scratch", Prompt: "(scratch) ", History: false},
		},
	}
}

// New reads the config file at path. A missing file is not an error; the
// default pad is used instead.
func New(path string) (Config, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, err
	}
	var config Config
	if err = json.Unmarshal(file, &config); err != nil {
		return Config{}, err
	}

	if config.Capacity < 0 {
		return Config{}, errors.New("Capacity must not be negative")
	}
	if config.Capacity == 0 {
		config.Capacity = history.DefaultCap
	}
	if len(config.Fields) == 0 {
		return Config{}, errors.New("No fields were specified")
	}
	for i, field := range config.Fields {
		if field.Name == "" {
			return Config{}, errors.New(fmt.Sprintf("Field %d has no name", i))
		}
		if field.Prompt == "" {
			field.Prompt = fmt.Sprintf("(%s) ", field.Name)
			config.Fields[i] = field
		}
	}
	return config, nil
}
