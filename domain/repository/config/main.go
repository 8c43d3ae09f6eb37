package config

import (
	"github.com/rotisserie/eris"
	"github.com/t-kuni/jobconf/domain/model/patch"
)

var ErrLocked = eris.New("config file is locked by another jobconf process")

// Config is the part of the document jobconf writes. Everything else is left as is.
type Config struct {
	ExampleDirectory string   `yaml:"exampleDirectory" json:"exampleDirectory"`
	Builder          Endpoint `yaml:"builder" json:"builder"`
	MQTT             Endpoint `yaml:"mqtt" json:"mqtt"`
}

type Endpoint struct {
	Hostname string `yaml:"hostname" json:"hostname"`
	// Port is a number in a well-formed document but any scalar is accepted.
	Port any `yaml:"port,omitempty" json:"port,omitempty"`
}

// Repository holds one configuration document in memory.
// A single writer is assumed; callers that may run concurrently take Lock first.
type Repository interface {
	Path() string
	Syntax() patch.Syntax
	Load() error
	Document() string
	PatchField(rule patch.Rule, answer string) (patch.Result, error)
	Save() error
	Read() (*Config, error)
	Lock() (unlock func() error, err error)
}
