package privilege

import (
	"fmt"

	"code.cloudfoundry.org/lager/v3"
)

//go:generate counterfeiter . Setter

// Setter is the kernel interface for changing the process identity.
type Setter interface {
	Setgroups(gids []int) error
	Setgid(gid int) error
	Setuid(uid int) error
}

type Transitioner struct {
	setter Setter
}

func NewTransitioner(setter Setter) Transitioner {
	return Transitioner{setter: setter}
}

// Transition drops the process identity to uid/gid with the given
// supplementary groups. The order is fixed: supplementary groups, then gid,
// then uid. Group membership can only be changed while the process still
// holds the privileged uid, so setuid must come last. Any rejected step is
// fatal; there is no rollback of the steps already applied.
func (t Transitioner) Transition(log lager.Logger, uid, gid int, gids []int) error {
	log = log.Session("transition", lager.Data{"uid": uid, "gid": gid, "gids": gids})
	log.Debug("start")
	defer log.Debug("finished")

	if err := t.setter.Setgroups(gids); err != nil {
		log.Error("setgroups-failed", err)
		return fmt.Errorf("setgroups %v: %w", gids, err)
	}
	if err := t.setter.Setgid(gid); err != nil {
		log.Error("setgid-failed", err)
		return fmt.Errorf("setgid %d: %w", gid, err)
	}
	if err := t.setter.Setuid(uid); err != nil {
		log.Error("setuid-failed", err)
		return fmt.Errorf("setuid %d: %w", uid, err)
	}

	return nil
}
