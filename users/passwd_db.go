package users

import (
	"os"
	"path/filepath"

	"github.com/opencontainers/runc/libcontainer/user"
)

// PasswdDB is an IdentityDB backed by the etc/passwd and etc/group files
// under a root filesystem path.
type PasswdDB struct {
	passwdPath string
	groupPath  string
}

func NewPasswdDB(rootFsPath string) PasswdDB {
	return PasswdDB{
		passwdPath: filepath.Join(rootFsPath, "etc", "passwd"),
		groupPath:  filepath.Join(rootFsPath, "etc", "group"),
	}
}

func (db PasswdDB) LookupUserName(name string) (User, error) {
	return db.lookupUser(func(u user.User) bool {
		return u.Name == name
	})
}

func (db PasswdDB) LookupUID(uid int) (User, error) {
	return db.lookupUser(func(u user.User) bool {
		return u.Uid == uid
	})
}

func (db PasswdDB) LookupGroupName(name string) (Group, error) {
	records, err := user.ParseGroupFileFilter(db.groupPath, func(g user.Group) bool {
		return g.Name == name
	})
	if err != nil {
		if os.IsNotExist(err) {
			return Group{}, ErrNotFound
		}
		return Group{}, err
	}
	if len(records) == 0 {
		return Group{}, ErrNotFound
	}

	return Group{Name: records[0].Name, GID: records[0].Gid}, nil
}

func (db PasswdDB) lookupUser(filter func(user.User) bool) (User, error) {
	records, err := user.ParsePasswdFileFilter(db.passwdPath, filter)
	if err != nil {
		if os.IsNotExist(err) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	if len(records) == 0 {
		return User{}, ErrNotFound
	}

	record := records[0]
	return User{Name: record.Name, UID: record.Uid, GID: record.Gid, Home: record.Home}, nil
}
