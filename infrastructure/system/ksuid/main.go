package ksuid

import (
	"github.com/segmentio/ksuid"
)

// Generator hands out sortable unique ids, used for temporary file names.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) New() string {
	return ksuid.New().String()
}
