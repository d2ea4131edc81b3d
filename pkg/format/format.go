// Package format holds the on-disk layouts of the supported fingerprint
// sensor template databases.
package format

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownFormat is returned when a format name is not in the registry
var ErrUnknownFormat = errors.New("unknown format")

// Descriptor describes a sensor's template database layout
type Descriptor struct {
	Name        string // Registry key, e.g. "as608"
	DisplayName string // Sensor model name
	Vendor      string // Sensor vendor
	SlotSize    int    // Bytes per template slot
	Capacity    int    // Number of slots in a full database
}

// TotalSize returns the size of a full database file in bytes
func (d Descriptor) TotalSize() int {
	return d.SlotSize * d.Capacity
}

// String returns the sensor model name
func (d Descriptor) String() string {
	return d.DisplayName
}

const (
	AS608   = "as608"
	R307    = "r307"
	GT511C3 = "gt511c3"
)

var registry = map[string]Descriptor{
	AS608:   {Name: AS608, DisplayName: "AS608", Vendor: "Adafruit", SlotSize: 512, Capacity: 162},
	R307:    {Name: R307, DisplayName: "R307", Vendor: "ZHONGSEN", SlotSize: 512, Capacity: 1000},
	GT511C3: {Name: GT511C3, DisplayName: "GT-511C3", Vendor: "Grow", SlotSize: 1024, Capacity: 200},
}

// Lookup returns the descriptor registered under name. Matching ignores case
// and surrounding whitespace.
func Lookup(name string) (Descriptor, error) {
	d, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w '%s'", ErrUnknownFormat, name)
	}
	return d, nil
}

// Names returns the registered format names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every registered descriptor ordered by name
func All() []Descriptor {
	names := Names()
	all := make([]Descriptor, 0, len(names))
	for _, name := range names {
		all = append(all, registry[name])
	}
	return all
}
