package groups

import (
	"errors"
	"fmt"

	"code.cloudfoundry.org/lager/v3"
)

// ErrTooSmall is returned by a MembershipDB when the supplied buffer cannot
// hold the full group list. It is the one retryable condition in the
// lookup protocol; everything else is a real failure.
var ErrTooSmall = errors.New("group list buffer too small")

// maxProbes bounds the size-probe loop so a misbehaving database that keeps
// reporting a bigger count cannot spin us forever.
const maxProbes = 10

//go:generate counterfeiter . MembershipDB

// MembershipDB answers "which groups does this user belong to", following
// the getgrouplist(3) contract: the reported count is always the full
// membership size (primary group included), and buf is only filled when it
// is large enough, otherwise ErrTooSmall is returned alongside the count.
type MembershipDB interface {
	Grouplist(username string, gid int, buf []int) (int, error)
}

type Calculator struct {
	db MembershipDB
}

func NewCalculator(db MembershipDB) Calculator {
	return Calculator{db: db}
}

// Supplementary derives the complete supplementary group list for username,
// whose primary gid is gid. The result size is unknown up front, so it
// probes with an empty buffer, allocates exactly the reported count and
// retries until the query fits.
func (c Calculator) Supplementary(log lager.Logger, username string, gid int) ([]int, error) {
	log = log.Session("supplementary-groups", lager.Data{"username": username, "gid": gid})
	log.Debug("start")
	defer log.Debug("finished")

	var buf []int
	for probes := 0; probes < maxProbes; probes++ {
		n, err := c.db.Grouplist(username, gid, buf)
		if err == nil {
			log.Debug("derived", lager.Data{"gids": buf[:n]})
			return buf[:n], nil
		}
		if !errors.Is(err, ErrTooSmall) {
			log.Error("grouplist-failed", err)
			return nil, fmt.Errorf("group list for %s: %w", username, err)
		}
		buf = make([]int, n)
	}

	err := fmt.Errorf("group list for %s: still too small after %d attempts", username, maxProbes)
	log.Error("grouplist-gave-up", err)
	return nil, err
}
