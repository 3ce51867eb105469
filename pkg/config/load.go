package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/aretw0/steer/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML or JSON tuning file and overlays it on Default.
// Keys missing from the file keep their default value; unknown keys are an error.
func Load(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("failed to read tuning: %w", err)
	}
	return Parse(data, strings.ToLower(filepath.Ext(path)))
}

// Parse decodes tuning bytes. ext selects the format: ".json", anything else is YAML.
func Parse(data []byte, ext string) (Tuning, error) {
	raw := map[string]any{}
	if ext == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return Tuning{}, fmt.Errorf("failed to parse tuning json: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Tuning{}, fmt.Errorf("failed to parse tuning yaml: %w", err)
		}
	}
	return Decode(raw)
}

// Decode overlays a generic map (from any source) on Default and validates it.
func Decode(raw map[string]any) (Tuning, error) {
	t := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &t,
		TagName:     "mapstructure",
		ErrorUnused: true,
		DecodeHook:  mapstructure.DecodeHookFuncType(enumHook),
	})
	if err != nil {
		return Tuning{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Tuning{}, fmt.Errorf("%w: %v", domain.ErrInvalidTuning, err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

var (
	strategyType = reflect.TypeOf(domain.MixStrategy(0))
	policyType   = reflect.TypeOf(domain.OutputLimitPolicy(0))
)

// enumHook maps names such as "priority_soft_saturate" onto the enum types.
func enumHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}
	switch to {
	case strategyType:
		return domain.ParseMixStrategy(data.(string))
	case policyType:
		return domain.ParseOutputLimitPolicy(data.(string))
	}
	return data, nil
}
