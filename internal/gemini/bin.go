package gemini

import (
	"fmt"
	"os"
	"os/exec"
)

// EnvBin overrides PATH discovery of the Gemini CLI.
const EnvBin = "GEMINI_BIN"

const binName = "gemini"

// LocateBin resolves the Gemini CLI executable: the GEMINI_BIN environment
// override wins, otherwise the system PATH is searched. Cheap enough to call
// per request.
func LocateBin() (string, error) {
	if p := os.Getenv(EnvBin); p != "" {
		return p, nil
	}
	p, err := exec.LookPath(binName)
	if err != nil {
		return "", fmt.Errorf("%w: install the Gemini CLI or set %s", ErrExecutableNotFound, EnvBin)
	}
	return p, nil
}

// BinAvailable reports whether the Gemini CLI can be resolved at all.
func BinAvailable() bool {
	_, err := LocateBin()
	return err == nil
}
