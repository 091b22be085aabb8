package scaffold

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// mergedSections are the package.json objects whose entries are combined
// key-by-key instead of kept wholesale.
var mergedSections = map[string]bool{
	"scripts":         true,
	"devDependencies": true,
	"dependencies":    true,
}

// MergePackageJSON merges the generated manifest into an existing one.
// Existing values always win: top-level keys the user already has are kept,
// and within scripts/dependencies sections only missing entries are added.
// Nothing the user wrote is ever removed.
func MergePackageJSON(existing, generated []byte) ([]byte, error) {
	var current map[string]any
	if err := json.Unmarshal(existing, &current); err != nil {
		return nil, errors.Wrap(err, "existing package.json is not valid JSON")
	}

	var incoming map[string]any
	if err := json.Unmarshal(generated, &incoming); err != nil {
		return nil, errors.Wrap(err, "generated package.json is not valid JSON")
	}

	for key, value := range incoming {
		existingValue, present := current[key]
		if !present {
			current[key] = value
			continue
		}

		if !mergedSections[key] {
			continue
		}

		currentSection, ok1 := existingValue.(map[string]any)
		incomingSection, ok2 := value.(map[string]any)
		if !ok1 || !ok2 {
			continue
		}

		for name, entry := range incomingSection {
			if _, exists := currentSection[name]; !exists {
				currentSection[name] = entry
			}
		}
	}

	out, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode merged package.json")
	}

	return append(out, '\n'), nil
}
