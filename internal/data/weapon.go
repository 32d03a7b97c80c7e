package data

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// WeaponTemplate holds static data for one weapon slot loaded from YAML.
type WeaponTemplate struct {
	Slot         int     `yaml:"slot"`          // 1-based, also the switch key
	Name         string  `yaml:"name"`
	Kind         string  `yaml:"kind"`          // "thrown" or "insult"
	FireRate     float64 `yaml:"fire_rate"`     // seconds between shots
	Speed        float64 `yaml:"speed"`         // units per second along aim
	Lifetime     float64 `yaml:"lifetime"`      // seconds
	Spread       float64 `yaml:"spread"`        // full width of random aim jitter
	Gravity      bool    `yaml:"gravity"`
	MuzzleOffset float64 `yaml:"muzzle_offset"` // spawn distance ahead of the eye
}

type weaponListFile struct {
	Weapons []WeaponTemplate `yaml:"weapons"`
}

// WeaponTable holds weapon templates ordered by slot.
type WeaponTable struct {
	weapons []WeaponTemplate
}

// DefaultWeapons returns the built-in cigarette and insult weapons.
func DefaultWeapons() *WeaponTable {
	return &WeaponTable{weapons: []WeaponTemplate{
		{Slot: 1, Name: "cigarette", Kind: "thrown", FireRate: 0.5, Speed: 25, Lifetime: 2.0, Spread: 0.1, Gravity: true, MuzzleOffset: 0.7},
		{Slot: 2, Name: "insult", Kind: "insult", FireRate: 1.0, Speed: 15, Lifetime: 3.0, MuzzleOffset: 1.0},
	}}
}

// LoadWeaponTable loads weapon templates from a YAML file. An empty path
// yields the built-in table.
func LoadWeaponTable(path string) (*WeaponTable, error) {
	if path == "" {
		return DefaultWeapons(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read weapon_list: %w", err)
	}
	var f weaponListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse weapon_list: %w", err)
	}
	if len(f.Weapons) == 0 {
		return nil, fmt.Errorf("weapon_list %s: no weapons", path)
	}
	seen := make(map[int]string, len(f.Weapons))
	for _, w := range f.Weapons {
		if w.Name == "" {
			return nil, fmt.Errorf("weapon_list %s: slot %d has no name", path, w.Slot)
		}
		if w.Slot < 1 {
			return nil, fmt.Errorf("weapon_list %s: %s has slot %d, want >= 1", path, w.Name, w.Slot)
		}
		if prev, dup := seen[w.Slot]; dup {
			return nil, fmt.Errorf("weapon_list %s: slot %d used by %s and %s", path, w.Slot, prev, w.Name)
		}
		if w.FireRate < 0 || w.Speed < 0 || w.Lifetime <= 0 {
			return nil, fmt.Errorf("weapon_list %s: %s has invalid timing", path, w.Name)
		}
		seen[w.Slot] = w.Name
	}
	sort.Slice(f.Weapons, func(i, j int) bool { return f.Weapons[i].Slot < f.Weapons[j].Slot })
	return &WeaponTable{weapons: f.Weapons}, nil
}

// All returns the templates ordered by slot.
func (t *WeaponTable) All() []WeaponTemplate {
	return t.weapons
}

// Get returns a weapon template by name, or nil if not found.
func (t *WeaponTable) Get(name string) *WeaponTemplate {
	for i := range t.weapons {
		if t.weapons[i].Name == name {
			return &t.weapons[i]
		}
	}
	return nil
}

// Count returns the number of loaded templates.
func (t *WeaponTable) Count() int {
	return len(t.weapons)
}
