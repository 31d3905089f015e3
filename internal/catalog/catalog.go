package catalog

import (
	"fmt"

	"github.com/yolapp/yol-backend/internal/config"
	"github.com/yolapp/yol-backend/internal/domain"
	"github.com/yolapp/yol-backend/internal/validation"
)

// The catalog package loads the seed reference data: the daily-task menu,
// success definitions and species chains. Files are JSON under configs/seed
// and are validated against the schemas in configs/schemas before decoding.

// DailyTaskEntry is one daily-task template in the seed file.
// SuccessKey optionally links the template to a Daily-type success whose
// counter bumps on every completion.
type DailyTaskEntry struct {
	Title      string `json:"title"`
	Image      string `json:"image,omitempty"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
	XP         int    `json:"xp"`
	SuccessKey string `json:"success_key,omitempty"`
}

// SuccessEntry is one success definition in the seed file
type SuccessEntry struct {
	Key          string `json:"key"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Image        string `json:"image,omitempty"`
	AmountNeeded int    `json:"amount_needed"`
	SuccessXP    int    `json:"success_xp"`
	Type         string `json:"type"`
}

// SpeciesEntry is one (name, stage) pair in the seed file
type SpeciesEntry struct {
	Name  string `json:"name"`
	Stage string `json:"stage"`
}

// Domain converts the entry to its domain type
func (e SuccessEntry) Domain() domain.Success {
	return domain.Success{
		Key:          e.Key,
		Title:        e.Title,
		Description:  e.Description,
		Image:        e.Image,
		AmountNeeded: e.AmountNeeded,
		SuccessXP:    e.SuccessXP,
		Type:         domain.SuccessType(e.Type),
	}
}

// Domain converts the entry to its domain type
func (e SpeciesEntry) Domain() domain.Species {
	return domain.Species{
		Name:  e.Name,
		Stage: domain.Stage(e.Stage),
	}
}

// Loader loads and validates the seed catalogs
type Loader struct {
	validator validation.SchemaValidator
}

// NewLoader creates a catalog loader
func NewLoader() *Loader {
	return &Loader{validator: validation.NewSchemaValidator()}
}

// LoadDailyTasks reads and validates the daily-task catalog
func (l *Loader) LoadDailyTasks() ([]DailyTaskEntry, error) {
	var entries []DailyTaskEntry
	if err := l.validator.UnmarshalValidatedFile(config.ConfigPathDailyTasks, config.SchemaPathDailyTasks, &entries); err != nil {
		return nil, fmt.Errorf("failed to load daily task catalog: %w", err)
	}
	return entries, nil
}

// LoadSuccesses reads and validates the success definitions
func (l *Loader) LoadSuccesses() ([]SuccessEntry, error) {
	var entries []SuccessEntry
	if err := l.validator.UnmarshalValidatedFile(config.ConfigPathSuccesses, config.SchemaPathSuccesses, &entries); err != nil {
		return nil, fmt.Errorf("failed to load success catalog: %w", err)
	}
	if err := checkRequiredKeys(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// LoadSpecies reads and validates the species chains
func (l *Loader) LoadSpecies() ([]SpeciesEntry, error) {
	var entries []SpeciesEntry
	if err := l.validator.UnmarshalValidatedFile(config.ConfigPathSpecies, config.SchemaPathSpecies, &entries); err != nil {
		return nil, fmt.Errorf("failed to load species catalog: %w", err)
	}
	if err := checkChains(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// requiredSuccessKeys are the keys the services look up at runtime; a seed
// without them would surface as integrity errors on first use
var requiredSuccessKeys = []string{
	domain.SuccessKeyQuestMaster,
	domain.SuccessKeySelfRuling,
	domain.SuccessKeyPerfectionist,
	domain.SuccessKeyHatched,
	domain.SuccessKeyFirstEvolution,
	domain.SuccessKeySecondEvolution,
	domain.SuccessKeyBondLevelThree,
	domain.SuccessKeyBondLevelTen,
	domain.SuccessKeyBondLevelTwenty,
}

func checkRequiredKeys(entries []SuccessEntry) error {
	present := make(map[string]bool, len(entries))
	for _, e := range entries {
		present[e.Key] = true
	}
	for _, key := range requiredSuccessKeys {
		if !present[key] {
			return fmt.Errorf("success catalog is missing required key %q", key)
		}
	}
	return nil
}

// checkChains verifies every species name forms a complete Egg-to-Final chain
func checkChains(entries []SpeciesEntry) error {
	stages := make(map[string]map[domain.Stage]bool)
	for _, e := range entries {
		if stages[e.Name] == nil {
			stages[e.Name] = make(map[domain.Stage]bool)
		}
		stages[e.Name][domain.Stage(e.Stage)] = true
	}
	for name, have := range stages {
		for _, stage := range []domain.Stage{domain.StageEgg, domain.StageBaby, domain.StageAdolescent, domain.StageFinal} {
			if !have[stage] {
				return fmt.Errorf("species %q is missing its %s stage", name, stage)
			}
		}
	}
	return nil
}
