package execascmd

import (
	"fmt"
	"io"
	"os"

	"code.cloudfoundry.org/execas/groups"
	"code.cloudfoundry.org/execas/privilege"
	"code.cloudfoundry.org/execas/users"
)

type ExecasCommand struct {
	Logger LagerFlag

	RootFSPath string `long:"rootfs" default:"/" description:"Root filesystem containing the etc/passwd and etc/group databases."`
}

func (cmd *ExecasCommand) Run(userSpec string, argv []string) error {
	logger, _ := cmd.Logger.Logger("execas")

	db := users.NewPasswdDB(cmd.RootFSPath)
	runner := NewRunner(
		users.NewResolver(db),
		groups.NewCalculator(groups.NewFileMembershipDB(cmd.RootFSPath)),
		privilege.NewTransitioner(privilege.UnixSetter{}),
		privilege.UnixExecer{},
		users.Credential{UID: os.Getuid(), GID: os.Getgid()},
		os.Environ(),
	)

	return runner.Run(logger, userSpec, argv)
}

// PrintUsage takes the program name as a parameter rather than reaching for
// process-wide argv state.
func PrintUsage(w io.Writer, programName string) {
	fmt.Fprintf(w, "Usage: %s [OPTIONS] user-spec command [args...]\n", programName)
	fmt.Fprintf(w, "  eg:  %s nobody:nogroup /usr/sbin/nginx -g 'daemon off;'\n\n", programName)
	fmt.Fprintln(w, "user-spec is user[:group[,group...]]; user and group tokens may each be a")
	fmt.Fprintln(w, "name or a numeric id. With no group-part the user's own group memberships")
	fmt.Fprintln(w, "apply. The command replaces this process, keeping its pid and open file")
	fmt.Fprintln(w, "descriptors.")
}
