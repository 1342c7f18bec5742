package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/cltcalc/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadRegulatory reads a regulatory.yaml file. Keys present in the file
// override the built-in rule set; absent keys keep their default values.
// Bracket tables are replaced as a whole.
func LoadRegulatory(filename string) (*domain.RegulatoryConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read regulatory config %s: %w", filename, err)
	}

	rules := domain.DefaultRegulatoryConfig()
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse regulatory config: %w", err)
	}

	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("regulatory config validation failed: %w", err)
	}
	return &rules, nil
}

// ResolveRegulatory picks the rule set for a run: the explicit path first,
// then the CLTCALC_REGULATORY environment variable, then the built-in values.
func ResolveRegulatory(path string) (*domain.RegulatoryConfig, error) {
	if path == "" {
		path = getenv(EnvRegulatoryPath, "")
	}
	if path == "" {
		rules := domain.DefaultRegulatoryConfig()
		return &rules, nil
	}
	return LoadRegulatory(path)
}

// LoadFromFileWithRegulatory loads a request together with the rule set it
// should be evaluated against
func (ip *InputParser) LoadFromFileWithRegulatory(filename, regulatoryPath string) (*domain.CalculationRequest, *domain.RegulatoryConfig, error) {
	request, err := ip.LoadFromFile(filename)
	if err != nil {
		return nil, nil, err
	}
	rules, err := ResolveRegulatory(regulatoryPath)
	if err != nil {
		return nil, nil, err
	}
	return request, rules, nil
}
