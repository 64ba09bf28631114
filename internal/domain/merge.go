package domain

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-viper/mapstructure/v2"
)

// overrideFields are the override keys that name a ChainConfig field
var overrideFields = map[string]bool{
	"id":              true,
	"rpcUrl":          true,
	"blockExplorer":   true,
	"etherscanUrl":    true,
	"etherscanApiKey": true,
	"verifierUrl":     true,
}

// MergeOverride applies an override object on top of base, key by key.
//
// Every key present in the override replaces the base value, even when the new
// value is empty. A null clears the field. Keys that do not name a ChainConfig
// field are kept in Extra. When keepID is set the base ID survives the merge.
//
// A key whose value cannot be converted is skipped; the other keys still
// apply. The skipped keys are reported through the returned error.
func MergeOverride(base ChainConfig, override map[string]any, keepID bool) (ChainConfig, error) {
	merged := base.Clone()
	if len(override) == 0 {
		return merged, nil
	}

	keys := make([]string, 0, len(override))
	for k := range override {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs []error
	for _, key := range keys {
		value := override[key]

		if !overrideFields[key] {
			if merged.Extra == nil {
				merged.Extra = make(map[string]any)
			}
			merged.Extra[key] = value
			continue
		}
		if key == "id" && keepID {
			continue
		}

		next, err := decodeField(merged, key, value)
		if err != nil {
			errs = append(errs, fmt.Errorf("override key %q: %w", key, err))
			continue
		}
		merged = next
	}

	return merged, errors.Join(errs...)
}

// decodeField returns a copy of cfg with a single field replaced
func decodeField(cfg ChainConfig, key string, value any) (ChainConfig, error) {
	next := cfg.Clone()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &next,
		WeaklyTypedInput: true,
		ZeroFields:       true,
		MatchName: func(mapKey, fieldName string) bool {
			return mapKey == fieldName
		},
	})
	if err != nil {
		return cfg, err
	}

	if err := decoder.Decode(map[string]any{key: value}); err != nil {
		return cfg, err
	}
	return next, nil
}
