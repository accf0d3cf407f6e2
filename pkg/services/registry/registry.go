package registry

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/store/sales"
	salessql "github.com/de-tools/sales-atlas/pkg/store/sql"
	"gopkg.in/ini.v1"
)

// Registry resolves named dataset profiles from an ini file into record
// stores. One section per profile:
//
//	[demo]
//	type = synthetic
//	records = 100
//	seed = 42
//
//	[archive]
//	type = csv
//	path = /var/data/filtered_sales_data.csv
//
//	[warehouse]
//	type = sql
//	driver = postgres
//	dsn = postgres://...
//	table = sales_records
type Registry interface {
	Profiles(ctx context.Context) ([]string, error)
	Resolve(ctx context.Context, profile string) (sales.Store, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) Profiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) Resolve(_ context.Context, profile string) (sales.Store, error) {
	section, err := cr.cfg.GetSection(profile)
	if err != nil {
		return nil, fmt.Errorf("profile %q not found", profile)
	}

	storeType := section.Key("type").String()
	switch storeType {
	case "", "synthetic":
		return sales.NewSyntheticStore(sales.SyntheticSettings{
			Records: section.Key("records").MustInt(0),
			Seed:    section.Key("seed").MustInt64(0),
		}), nil
	case "csv":
		path := section.Key("path").String()
		if path == "" {
			return nil, fmt.Errorf("profile %q: csv store requires a path", profile)
		}
		return sales.NewCSVStore(path), nil
	case "sql":
		driver := section.Key("driver").String()
		dsn := section.Key("dsn").String()
		if driver == "" || dsn == "" {
			return nil, fmt.Errorf("profile %q: sql store requires driver and dsn", profile)
		}
		db, err := sql.Open(driver, dsn)
		if err != nil {
			return nil, fmt.Errorf("profile %q: open database: %w", profile, err)
		}
		return salessql.NewStore(db, section.Key("table").String())
	default:
		return nil, fmt.Errorf("profile %q: unknown store type %q", profile, storeType)
	}
}
