package users

import "errors"

const DefaultHome string = "/"

// User is a passwd record as far as this tool cares about it.
type User struct {
	Name string
	UID  int
	GID  int
	Home string
}

// Group is a group record.
type Group struct {
	Name string
	GID  int
}

// ErrNotFound is returned by IdentityDB lookups when no record matches.
var ErrNotFound = errors.New("no matching entries in the identity database")

//go:generate counterfeiter . IdentityDB

// IdentityDB is the system identity database: NSS-style lookup of users by
// name and by uid, and of groups by name.
type IdentityDB interface {
	LookupUserName(name string) (User, error)
	LookupUID(uid int) (User, error)
	LookupGroupName(name string) (Group, error)
}
