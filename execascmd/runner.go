package execascmd

import (
	"code.cloudfoundry.org/execas/users"
	"code.cloudfoundry.org/lager/v3"
)

//go:generate counterfeiter . IdentityResolver
type IdentityResolver interface {
	Resolve(log lager.Logger, spec users.Spec, caller users.Credential) (users.Identity, error)
}

//go:generate counterfeiter . GroupCalculator
type GroupCalculator interface {
	Supplementary(log lager.Logger, username string, gid int) ([]int, error)
}

//go:generate counterfeiter . Transitioner
type Transitioner interface {
	Transition(log lager.Logger, uid, gid int, gids []int) error
}

//go:generate counterfeiter . Execer
type Execer interface {
	Exec(log lager.Logger, argv []string, env []string) error
}

// Runner is the whole pipeline: resolve the user spec, work out the
// supplementary group set, drop privileges, replace the process image.
type Runner struct {
	resolver     IdentityResolver
	calculator   GroupCalculator
	transitioner Transitioner
	execer       Execer
	caller       users.Credential
	environ      []string
}

func NewRunner(
	resolver IdentityResolver,
	calculator GroupCalculator,
	transitioner Transitioner,
	execer Execer,
	caller users.Credential,
	environ []string,
) *Runner {
	return &Runner{
		resolver:     resolver,
		calculator:   calculator,
		transitioner: transitioner,
		execer:       execer,
		caller:       caller,
		environ:      environ,
	}
}

// Run only returns on failure: on success the exec replaces this program.
func (r *Runner) Run(log lager.Logger, userSpec string, argv []string) error {
	log = log.Session("run", lager.Data{"spec": userSpec, "path": argv[0]})
	log.Debug("start")

	identity, err := r.resolver.Resolve(log, users.ParseSpec(userSpec), r.caller)
	if err != nil {
		return err
	}

	gids, err := r.supplementaryGroups(log, identity)
	if err != nil {
		return err
	}

	if err := r.transitioner.Transition(log, identity.UID, identity.GID, gids); err != nil {
		return err
	}

	return r.execer.Exec(log, argv, envWithHome(r.environ, identity.Home))
}

// supplementaryGroups picks the source of the supplementary set: an
// explicit group-part wins outright, a resolved passwd record gets the full
// derived membership, and a synthetic numeric identity gets just its gid so
// the caller's own supplementary groups are never carried across.
func (r *Runner) supplementaryGroups(log lager.Logger, identity users.Identity) ([]int, error) {
	if identity.ExplicitGroups != nil {
		return identity.ExplicitGroups, nil
	}
	if !identity.HasRecord {
		return []int{identity.GID}, nil
	}
	return r.calculator.Supplementary(log, identity.Username, identity.GID)
}
