package catalogs

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/spotmap/pkg/errors"
)

const (
	regionsFile = "regions.yaml"
	spotsDir    = "spots"
)

// load reads regions.yaml and then spots/<region>.yaml for each region in
// region order. Spot files for unknown regions are rejected.
func load(fsys fs.FS) ([]*Region, []sourcedSpot, error) {
	regions, err := loadRegions(fsys)
	if err != nil {
		return nil, nil, err
	}

	known := make(map[string]bool, len(regions))
	var spots []sourcedSpot
	for _, region := range regions {
		known[string(region.ID)+".yaml"] = true

		file := path.Join(spotsDir, string(region.ID)+".yaml")
		loaded, err := loadSpotFile(fsys, file)
		if err != nil {
			return nil, nil, err
		}
		for _, s := range loaded {
			if s.Prefecture == "" {
				s.Prefecture = region.ID
			}
			if s.Prefecture != region.ID {
				return nil, nil, &errors.ValidationError{
					Field:   "prefecture",
					Value:   string(s.Prefecture),
					Message: fmt.Sprintf("spot %s in %s belongs to region %s", s.ID, file, s.Prefecture),
				}
			}
		}
		spots = append(spots, sourced(loaded, file)...)
	}

	if err := checkStraySpotFiles(fsys, known); err != nil {
		return nil, nil, err
	}
	return regions, spots, nil
}

func loadRegions(fsys fs.FS) ([]*Region, error) {
	data, err := fs.ReadFile(fsys, regionsFile)
	if err != nil {
		return nil, errors.WrapIO("read", regionsFile, err)
	}

	var regions []*Region
	if err := yaml.Unmarshal(data, &regions); err != nil {
		return nil, errors.WrapParse("yaml", regionsFile, err)
	}
	if len(regions) == 0 {
		return nil, &errors.ValidationError{Field: "regions", Message: regionsFile + " defines no regions"}
	}
	return regions, nil
}

// loadSpotFile reads one spot file. A missing file means the region has no spots.
func loadSpotFile(fsys fs.FS, file string) ([]*Spot, error) {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.WrapIO("read", file, err)
	}

	var spots []*Spot
	if err := yaml.Unmarshal(data, &spots); err != nil {
		return nil, errors.WrapParse("yaml", file, err)
	}
	return spots, nil
}

func checkStraySpotFiles(fsys fs.FS, known map[string]bool) error {
	entries, err := fs.ReadDir(fsys, spotsDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.WrapIO("read", spotsDir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".yaml") {
			continue
		}
		if !known[name] {
			return &errors.ValidationError{
				Field:   "spots",
				Value:   name,
				Message: fmt.Sprintf("%s/%s does not match any region in %s", spotsDir, name, regionsFile),
			}
		}
	}
	return nil
}
