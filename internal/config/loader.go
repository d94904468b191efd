package config

import (
	"embed"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

const (
	classesFile = "classes.yaml"
	rulesFile   = "rules.yaml"
)

// RequiredClasses are the class ids the game menu and the monster rely on.
var RequiredClasses = []string{"warrior", "mage", "rogue"}

//go:embed defaults/*.yaml
var defaults embed.FS

func decodeYAML(b []byte, out any) error {
	return yaml.Unmarshal(b, out)
}

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return decodeYAML(b, out)
}

func loadDefault(name string, out any) error {
	b, err := defaults.ReadFile("defaults/" + name)
	if err != nil {
		return errors.Wrapf(err, "read embedded %s", name)
	}
	return errors.Wrapf(decodeYAML(b, out), "decode embedded %s", name)
}

// loadOverride reads dir/name when it exists and falls back to the embedded
// table otherwise.
func loadOverride(dir, name string, out any) error {
	if dir == "" {
		return loadDefault(name, out)
	}
	path := filepath.Join(dir, name)
	err := loadYAML(path, out)
	if err == nil {
		return nil
	}
	if os.IsNotExist(err) {
		return loadDefault(name, out)
	}
	return errors.Wrapf(err, "load %s", path)
}

// Defaults returns the embedded tables.
func Defaults() (*ClassesConfig, *RulesConfig, error) {
	return LoadAll("")
}

// LoadAll loads classes.yaml and rules.yaml from dir. Files missing from dir
// (or an empty dir) use the embedded defaults. Both tables are validated.
func LoadAll(dir string) (*ClassesConfig, *RulesConfig, error) {
	var cc ClassesConfig
	var rc RulesConfig
	if err := loadOverride(dir, classesFile, &cc); err != nil {
		return nil, nil, err
	}
	if err := loadOverride(dir, rulesFile, &rc); err != nil {
		return nil, nil, err
	}
	if err := Validate(&cc, &rc); err != nil {
		return nil, nil, err
	}
	return &cc, &rc, nil
}

func Validate(cc *ClassesConfig, rc *RulesConfig) error {
	if cc == nil || rc == nil {
		return errors.New("config: missing classes or rules")
	}
	selectors := map[string]string{}
	for _, c := range cc.Classes {
		if c.ID == "" || c.Name == "" {
			return errors.Newf("config: class entry needs id and name: %+v", c)
		}
		if c.Selector == "" {
			return errors.Newf("config: class %q has no selector", c.ID)
		}
		if other, dup := selectors[c.Selector]; dup {
			return errors.Newf("config: classes %q and %q share selector %q", other, c.ID, c.Selector)
		}
		selectors[c.Selector] = c.ID
	}
	for _, id := range RequiredClasses {
		if _, ok := cc.Find(id); !ok {
			return errors.Newf("config: class %q is required", id)
		}
	}

	if rc.BaseHealth.Min > rc.BaseHealth.Max {
		return errors.Newf("config: base_health min %d > max %d", rc.BaseHealth.Min, rc.BaseHealth.Max)
	}
	if rc.BaseAttack.Min > rc.BaseAttack.Max {
		return errors.Newf("config: base_attack min %d > max %d", rc.BaseAttack.Min, rc.BaseAttack.Max)
	}
	if rc.DamageSpread < 0 {
		return errors.Newf("config: damage_spread must not be negative, got %d", rc.DamageSpread)
	}
	if rc.HealAmount < 0 {
		return errors.Newf("config: heal_amount must not be negative, got %d", rc.HealAmount)
	}
	if rc.Monster.Name == "" {
		return errors.New("config: monster needs a name")
	}
	if _, ok := cc.Find(rc.Monster.Class); !ok {
		return errors.Newf("config: monster class %q is not a known class", rc.Monster.Class)
	}
	return nil
}
