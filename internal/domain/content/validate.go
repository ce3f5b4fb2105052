package content

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidMediaConfig = errors.New("payload does not match the media config schema")

// ValidateMediaPayload structurally verifies a decoded JSON value against
// the MediaConfig shape: profileImage must be a string, profiles an object,
// and every profile present must carry a string image, a string
// backgroundGif, and a backgrounds object with a string for each of the
// fixed section keys.
//
// The set of profile keys is deliberately not pinned to the three known
// personas: any well-formed profile key is accepted, so documents written
// before or after a persona is added keep validating. Checks are purely
// structural; URL well-formedness is not this layer's concern.
func ValidateMediaPayload(v any) error {
	obj, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: top level is not an object", ErrInvalidMediaConfig)
	}

	if _, ok := obj["profileImage"].(string); !ok {
		return fmt.Errorf("%w: profileImage must be a string", ErrInvalidMediaConfig)
	}

	profiles, ok := obj["profiles"].(map[string]any)
	if !ok {
		return fmt.Errorf("%w: profiles must be an object", ErrInvalidMediaConfig)
	}

	for name, raw := range profiles {
		profile, ok := raw.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: profile %q is not an object", ErrInvalidMediaConfig, name)
		}
		if _, ok := profile["image"].(string); !ok {
			return fmt.Errorf("%w: profile %q image must be a string", ErrInvalidMediaConfig, name)
		}
		if _, ok := profile["backgroundGif"].(string); !ok {
			return fmt.Errorf("%w: profile %q backgroundGif must be a string", ErrInvalidMediaConfig, name)
		}
		backgrounds, ok := profile["backgrounds"].(map[string]any)
		if !ok {
			return fmt.Errorf("%w: profile %q backgrounds must be an object", ErrInvalidMediaConfig, name)
		}
		for _, section := range SectionKeys {
			if _, ok := backgrounds[string(section)].(string); !ok {
				return fmt.Errorf("%w: profile %q is missing background %q", ErrInvalidMediaConfig, name, section)
			}
		}
	}

	return nil
}

// ParseMediaConfig decodes and validates raw JSON into a MediaConfig. A
// payload that fails validation is never partially applied.
func ParseMediaConfig(data []byte) (MediaConfig, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return MediaConfig{}, fmt.Errorf("invalid JSON payload: %w", err)
	}
	if err := ValidateMediaPayload(raw); err != nil {
		return MediaConfig{}, err
	}
	var cfg MediaConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return MediaConfig{}, fmt.Errorf("invalid JSON payload: %w", err)
	}
	return cfg, nil
}
