package privilege

import (
	"fmt"
	"os/exec"

	"code.cloudfoundry.org/lager/v3"
	"golang.org/x/sys/unix"
)

// UnixExecer replaces the current process image, keeping the pid and open
// file descriptors. A nil return is unreachable: on success the program is
// gone, so Exec only ever returns an error.
type UnixExecer struct{}

func (UnixExecer) Exec(log lager.Logger, argv []string, env []string) error {
	path, err := exec.LookPath(argv[0])
	if err != nil {
		log.Error("lookup-path-failed", err)
		return fmt.Errorf("exec %s: %w", argv[0], err)
	}

	log.Debug("exec", lager.Data{"path": path, "argv": argv})
	if err := unix.Exec(path, argv, env); err != nil {
		log.Error("exec-failed", err)
		return fmt.Errorf("exec %s: %w", argv[0], err)
	}

	return nil
}
