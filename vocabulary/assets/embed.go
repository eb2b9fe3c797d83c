// Package assets embeds the default vocabulary sources so the engine
// works out of the box without external files. Configured vocabulary
// paths take precedence; these are the fallback.
package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/c360studio/roxmodel/vocabulary"
)

// Default vocabulary names. They double as the ID namespace prefix for
// every class the source declares.
const (
	// CatalogName is the vocabulary name of the data-catalog source.
	CatalogName = "dcat"

	// RoboticsName is the vocabulary name of the OPC UA robotics source.
	RoboticsName = "opcua"
)

// Embedded source file names.
const (
	// CatalogFile is the default data-catalog CSV.
	CatalogFile = "dcat.csv"

	// RoboticsFile is the default robotics object-type CSV.
	RoboticsFile = "robotics.csv"
)

//go:embed *.csv
var defaults embed.FS

// FS returns the embedded filesystem holding the default sources.
func FS() fs.FS {
	return defaults
}

// Catalog parses and returns the default data-catalog vocabulary.
func Catalog() (*vocabulary.Source, error) {
	return parse(CatalogName, CatalogFile)
}

// Robotics parses and returns the default robotics vocabulary.
func Robotics() (*vocabulary.Source, error) {
	return parse(RoboticsName, RoboticsFile)
}

func parse(name, file string) (*vocabulary.Source, error) {
	f, err := defaults.Open(file)
	if err != nil {
		return nil, fmt.Errorf("open embedded vocabulary %s: %w", file, err)
	}
	defer f.Close()

	src, err := vocabulary.ParseSource(name, f)
	if err != nil {
		return nil, fmt.Errorf("embedded %s: %w", file, err)
	}
	return src, nil
}
