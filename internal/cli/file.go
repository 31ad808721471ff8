package cli

import (
	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
)

// planFile is the on-disk form of an allocation request:
//
//	primary = "192.168.0.0/24"
//	hosts = [50, 20, 10]
type planFile struct {
	Primary string `toml:"primary"`
	Hosts   []int  `toml:"hosts"`
}

// loadPlanFile reads a primary network and its host requirements from a TOML
// file. Every failure is an input error.
func loadPlanFile(path string) (string, []int, error) {
	var file planFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return "", nil, errors.Mark(errors.Wrapf(err, "could not read plan file %s", path), InvalidInputError)
	}

	if file.Primary == "" {
		return "", nil, errors.Mark(errors.Newf("plan file %s does not set a primary network", path), InvalidInputError)
	}
	if len(file.Hosts) == 0 {
		return "", nil, errors.Mark(errors.Newf("plan file %s does not list any host requirements", path), InvalidInputError)
	}

	return file.Primary, file.Hosts, nil
}
