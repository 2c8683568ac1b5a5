package config

import (
	"os"
	"regexp"
	"runtime"
)

// envPattern matches $(NAME) and $(NAME:-fallback).
var envPattern = regexp.MustCompile(`\$\(([A-Za-z0-9_]+)(?::-([^)]*))?\)`)

// windowsAliases lets one config name the same variable on every OS.
var windowsAliases = map[string]string{
	"HOSTNAME": "COMPUTERNAME",
	"HOME":     "USERPROFILE",
	"USER":     "USERNAME",
}

func lookupEnv(name string) (string, bool) {
	if runtime.GOOS == "windows" {
		if alias, ok := windowsAliases[name]; ok {
			name = alias
		}
	}
	return os.LookupEnv(name)
}

// expandEnvVars substitutes every $(NAME) in s. Unset or empty variables
// become the fallback when one is given, otherwise "".
func expandEnvVars(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(m string) string {
		sub := envPattern.FindStringSubmatch(m)
		if v, ok := lookupEnv(sub[1]); ok && v != "" {
			return v
		}
		return sub[2]
	})
}
