package users

import (
	"errors"
	"fmt"

	"code.cloudfoundry.org/lager/v3"
)

// Credential is the identity the process already runs as, used as the
// default when the user-part of a spec is empty.
type Credential struct {
	UID int
	GID int
}

// Identity is a resolved user spec, ready to be applied. ExplicitGroups is
// nil unless the spec carried a group-part; when set, it is the complete
// supplementary group list and GID is its first entry.
type Identity struct {
	UID            int
	GID            int
	Home           string
	Username       string
	HasRecord      bool
	ExplicitGroups []int
}

type Resolver struct {
	db IdentityDB
}

func NewResolver(db IdentityDB) Resolver {
	return Resolver{db: db}
}

// Resolve turns a parsed spec into an Identity. Numeric user tokens do not
// need a passwd record to exist, but the uid is still reverse-looked-up so
// a canonical record can supply the default gid and home directory.
func (r Resolver) Resolve(log lager.Logger, spec Spec, caller Credential) (Identity, error) {
	log = log.Session("resolve", lager.Data{"user": spec.User, "groups": spec.Groups})
	log.Debug("start")
	defer log.Debug("finished")

	identity := Identity{UID: caller.UID, GID: caller.GID, Home: DefaultHome}

	var record *User
	if spec.User != "" {
		if uid, ok := ParseID(spec.User); ok {
			identity.UID = uid
		} else {
			found, err := r.db.LookupUserName(spec.User)
			if err != nil {
				log.Error("lookup-user-failed", err)
				return Identity{}, fmt.Errorf("lookup user %s: %w", spec.User, err)
			}
			record = &found
		}
	}

	if record == nil {
		found, err := r.db.LookupUID(identity.UID)
		switch {
		case err == nil:
			record = &found
		case errors.Is(err, ErrNotFound):
			// a purely numeric identity is fine without a record
		default:
			log.Error("lookup-uid-failed", err)
			return Identity{}, fmt.Errorf("lookup uid %d: %w", identity.UID, err)
		}
	}

	if record != nil {
		identity.UID = record.UID
		identity.GID = record.GID
		identity.Home = record.Home
		identity.Username = record.Name
		identity.HasRecord = true
	}

	if len(spec.Groups) > 0 {
		gids, err := r.resolveGroups(log, spec.Groups)
		if err != nil {
			return Identity{}, err
		}
		identity.GID = gids[0]
		identity.ExplicitGroups = gids
	}

	log.Debug("resolved", lager.Data{"uid": identity.UID, "gid": identity.GID, "home": identity.Home})
	return identity, nil
}

func (r Resolver) resolveGroups(log lager.Logger, tokens []string) ([]int, error) {
	gids := make([]int, 0, len(tokens))
	for _, token := range tokens {
		if gid, ok := ParseID(token); ok {
			gids = append(gids, gid)
			continue
		}

		group, err := r.db.LookupGroupName(token)
		if err != nil {
			log.Error("lookup-group-failed", err, lager.Data{"group": token})
			return nil, fmt.Errorf("lookup group %s: %w", token, err)
		}
		gids = append(gids, group.GID)
	}
	return gids, nil
}
