package groups

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/opencontainers/runc/libcontainer/user"
)

// FileMembershipDB implements MembershipDB over an etc/group file. The
// primary gid always comes first; member groups follow in file order. A
// missing group file means the user belongs to its primary group only.
type FileMembershipDB struct {
	groupPath string
}

func NewFileMembershipDB(rootFsPath string) FileMembershipDB {
	return FileMembershipDB{groupPath: filepath.Join(rootFsPath, "etc", "group")}
}

func (db FileMembershipDB) Grouplist(username string, gid int, buf []int) (int, error) {
	memberships, err := db.memberships(username, gid)
	if err != nil {
		return 0, err
	}
	if len(buf) < len(memberships) {
		return len(memberships), ErrTooSmall
	}

	copy(buf, memberships)
	return len(memberships), nil
}

func (db FileMembershipDB) memberships(username string, gid int) ([]int, error) {
	records, err := user.ParseGroupFileFilter(db.groupPath, func(g user.Group) bool {
		return slices.Contains(g.List, username)
	})
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	list := []int{gid}
	for _, record := range records {
		if record.Gid == gid {
			continue
		}
		list = append(list, record.Gid)
	}
	return list, nil
}
