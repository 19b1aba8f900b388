package common

import (
	"os"
	"os/user"
	"path/filepath"
)

func ExpandPath(entry string) string {
	intermediate := os.ExpandEnv(entry)
	result, err := filepath.Abs(intermediate)
	if err != nil {
		return intermediate
	}
	return result
}

// LoginName resolves the name of the invoking user. Lookup order is the
// account database, then LOGNAME and USER, and "unknown" as last resort.
func LoginName() string {
	current, err := user.Current()
	if err == nil && len(current.Username) > 0 {
		return current.Username
	}
	Trace("user lookup failed: %v", err)
	for _, variable := range []string{"LOGNAME", "USER"} {
		if value := os.Getenv(variable); len(value) > 0 {
			return value
		}
	}
	return "unknown"
}
