package execascmd

import "strings"

// envWithHome passes env through with HOME forced to home. HOME is always
// set, even for identities with no passwd record, matching the historical
// behaviour callers rely on.
func envWithHome(env []string, home string) []string {
	newEnv := make([]string, 0, len(env)+1)
	for _, envVar := range env {
		if strings.HasPrefix(envVar, "HOME=") {
			continue
		}
		newEnv = append(newEnv, envVar)
	}
	return append(newEnv, "HOME="+home)
}
