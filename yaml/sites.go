// Package yaml loads site profiles from YAML files.
package yaml

import (
	"errors"
	"io"

	"github.com/fwojciec/ktorrent"
	yaml "gopkg.in/yaml.v3"
)

// sitesFile is the top level document of a sites file.
type sitesFile struct {
	Sites []*ktorrent.Site `yaml:"sites"`
}

// LoadSites decodes the site profiles listed under "sites" in r.
// Unknown keys and invalid profiles are rejected with EINVALID.
// An empty document yields no sites.
func LoadSites(r io.Reader) ([]*ktorrent.Site, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f sitesFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, ktorrent.Errorf(ktorrent.EINVALID, "decode sites file: %v", err)
	}

	seen := make(map[string]bool, len(f.Sites))
	for i, site := range f.Sites {
		if site == nil {
			return nil, ktorrent.Errorf(ktorrent.EINVALID, "site %d: empty entry", i+1)
		}
		if err := site.Validate(); err != nil {
			return nil, err
		}
		if seen[site.Name] {
			return nil, ktorrent.Errorf(ktorrent.EINVALID, "site %s: defined twice", site.Name)
		}
		seen[site.Name] = true
	}
	return f.Sites, nil
}
