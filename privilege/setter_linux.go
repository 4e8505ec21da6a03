package privilege

import "golang.org/x/sys/unix"

// UnixSetter applies identity changes to the whole process. Since Go 1.16
// the unix wrappers propagate these calls to every thread, so no raw
// syscall plumbing is needed.
type UnixSetter struct{}

func (UnixSetter) Setgroups(gids []int) error {
	return unix.Setgroups(gids)
}

func (UnixSetter) Setgid(gid int) error {
	return unix.Setgid(gid)
}

func (UnixSetter) Setuid(uid int) error {
	return unix.Setuid(uid)
}
