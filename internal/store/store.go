// Package store provides functionality for loading user-editable
// configuration data: category definitions, category aliases, and custom
// store-format overlays. Every loader treats a missing file as an empty
// result so a fresh installation works without any data files.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"receiptcsv/receipt-csv/internal/logging"
	"receiptcsv/receipt-csv/internal/models"
	"receiptcsv/receipt-csv/internal/storeformat"

	"gopkg.in/yaml.v3"
)

// CategoryStore manages loading of category and store-format data files.
type CategoryStore struct {
	CategoriesFile   string
	AliasesFile      string
	StoreFormatsFile string
	logger           logging.Logger
}

// NewCategoryStore creates a store over the given data file names. File
// names may be absolute paths or bare names resolved against the standard
// config locations.
func NewCategoryStore(categoriesFile, aliasesFile, storeFormatsFile string, logger logging.Logger) *CategoryStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &CategoryStore{
		CategoriesFile:   categoriesFile,
		AliasesFile:      aliasesFile,
		StoreFormatsFile: storeFormatsFile,
		logger:           logger,
	}
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *CategoryStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
		filepath.Join("data", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "receipt-csv", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// readConfigFile resolves and reads a data file. A missing file returns
// (nil, nil) so callers can fall back to empty defaults.
func (s *CategoryStore) readConfigFile(filename string) ([]byte, error) {
	path, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("Data file not found, using empty defaults",
				logging.Field{Key: logging.FieldFile, Value: filename})
			return nil, nil
		}
		return nil, fmt.Errorf("error resolving %s: %w", filename, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return data, nil
}

// LoadCategories loads category definitions from the categories YAML file.
func (s *CategoryStore) LoadCategories() ([]models.CategoryConfig, error) {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	data, err := s.readConfigFile(filename)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []models.CategoryConfig{}, nil
	}

	var config models.CategoriesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", filename, err)
	}

	s.logger.Debug("Loaded categories",
		logging.Field{Key: logging.FieldFile, Value: filename},
		logging.Field{Key: logging.FieldCount, Value: len(config.Categories)})
	return config.Categories, nil
}

// LoadAliases loads category alias entries from the aliases YAML file.
// Order in the file is the match order.
func (s *CategoryStore) LoadAliases() ([]models.AliasConfig, error) {
	filename := s.AliasesFile
	if filename == "" {
		filename = "aliases.yaml"
	}

	data, err := s.readConfigFile(filename)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []models.AliasConfig{}, nil
	}

	var config models.AliasesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", filename, err)
	}

	s.logger.Debug("Loaded aliases",
		logging.Field{Key: logging.FieldFile, Value: filename},
		logging.Field{Key: logging.FieldCount, Value: len(config.Aliases)})
	return config.Aliases, nil
}

// LoadStoreFormats loads and compiles custom store-format overlay entries.
// Entries that fail to compile are skipped with a warning rather than
// failing the whole load; the built-in registry remains usable regardless.
func (s *CategoryStore) LoadStoreFormats() ([]storeformat.Format, error) {
	filename := s.StoreFormatsFile
	if filename == "" {
		filename = "store_formats.yaml"
	}

	data, err := s.readConfigFile(filename)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []storeformat.Format{}, nil
	}

	var config storeformat.FormatsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", filename, err)
	}

	formats := make([]storeformat.Format, 0, len(config.Formats))
	for _, entry := range config.Formats {
		format, err := entry.Compile()
		if err != nil {
			s.logger.WithError(err).Warn("Skipping invalid store format entry",
				logging.Field{Key: logging.FieldStore, Value: entry.Name})
			continue
		}
		formats = append(formats, format)
	}

	s.logger.Debug("Loaded store formats",
		logging.Field{Key: logging.FieldFile, Value: filename},
		logging.Field{Key: logging.FieldCount, Value: len(formats)})
	return formats, nil
}
