// SPDX-License-Identifier: MPL-2.0

package launchfile

import (
	"github.com/gantrylabs/gantry/pkg/platform"
	"github.com/gantrylabs/gantry/pkg/settings"
)

// Builtins returns the launcher-owned settings injected ahead of declared
// ones. They are default-tier only and never exported, existing so that
// declared defaults and target templates can reference the host platform
// (e.g. target: "bin/${GANTRY_ARCH}/tool") instead of probing it.
//
// GANTRY_HOME and GANTRY_EXE_DIR degrade to empty when the host cannot
// supply them; a target that depends on one then fails at plan time with an
// unresolved-reference error rather than here.
func Builtins() []SettingDecl {
	noExport := false

	home, _ := platform.HomeDir()
	exeDir, _ := platform.ExecutableDir()

	return []SettingDecl{
		{
			Key:         "GANTRY_OS",
			Default:     platform.HostOS(),
			Description: "host operating system",
			Export:      &noExport,
		},
		{
			Key:         "GANTRY_ARCH",
			Default:     platform.HostArch(),
			Description: "host architecture id (os-arch)",
			Export:      &noExport,
		},
		{
			Key:         "GANTRY_HOME",
			Default:     home,
			Description: "current user's home directory",
			Export:      &noExport,
		},
		{
			Key:         "GANTRY_EXE_DIR",
			Default:     exeDir,
			Description: "directory holding the launcher executable",
			Export:      &noExport,
		},
	}
}

// Defaults returns the resolver defaults map: every effective declaration's
// key mapped to its declared default.
func (lf *Launchfile) Defaults() map[string]string {
	decls := lf.Decls()
	defaults := make(map[string]string, len(decls))
	for _, decl := range decls {
		defaults[decl.Key] = decl.Default
	}
	return defaults
}

// Policy returns the resolver policy for the effective declarations, in
// declaration order. Built-in settings resolve from their defaults alone.
func (lf *Launchfile) Policy() (settings.Policy, error) {
	decls := lf.Decls()
	policy := make(settings.Policy, 0, len(decls))
	for _, decl := range decls {
		kp := settings.KeyPolicy{Key: decl.Key}
		for _, name := range decl.Tiers {
			tier, err := settings.ParseTier(name)
			if err != nil {
				return nil, err
			}
			kp.Tiers = append(kp.Tiers, tier)
		}
		policy = append(policy, kp)
	}
	return policy, nil
}

// EnvInputs translates an environment snapshot (os.Environ form) into the
// resolver's environment tier: declared env names are looked up and bound
// to their setting keys. Unrelated variables are ignored.
func (lf *Launchfile) EnvInputs(environ []string) map[string]string {
	byName := make(map[string]string, len(environ))
	for _, entry := range environ {
		for i := 0; i < len(entry); i++ {
			if entry[i] == '=' {
				byName[entry[:i]] = entry[i+1:]
				break
			}
		}
	}

	inputs := make(map[string]string)
	for _, decl := range lf.Settings {
		if v, ok := byName[decl.EffectiveEnv()]; ok {
			inputs[decl.Key] = v
		}
	}
	return inputs
}

// RCInputs translates parsed resource-file values into the resolver's
// resource-file tier. Resource files use the same variable names as the
// environment: an rc file is pre-set environment in the launcher's model.
func (lf *Launchfile) RCInputs(values map[string]string) map[string]string {
	inputs := make(map[string]string)
	for _, decl := range lf.Settings {
		if v, ok := values[decl.EffectiveEnv()]; ok {
			inputs[decl.Key] = v
		}
	}
	return inputs
}

// FlagIndex maps every effective CLI flag name to its setting key. Built-in
// settings carry no flags.
func (lf *Launchfile) FlagIndex() map[string]string {
	index := make(map[string]string, len(lf.Settings))
	for _, decl := range lf.Settings {
		index[decl.EffectiveFlag()] = decl.Key
	}
	return index
}
