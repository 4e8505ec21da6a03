package users_test

import (
	"errors"

	"code.cloudfoundry.org/execas/users"
	"code.cloudfoundry.org/execas/users/usersfakes"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Resolver", func() {
	var (
		logger   *lagertest.TestLogger
		db       *usersfakes.FakeIdentityDB
		resolver users.Resolver
		caller   users.Credential
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("resolver-test")
		db = new(usersfakes.FakeIdentityDB)
		db.LookupUserNameReturns(users.User{}, users.ErrNotFound)
		db.LookupUIDReturns(users.User{}, users.ErrNotFound)
		db.LookupGroupNameReturns(users.Group{}, users.ErrNotFound)
		resolver = users.NewResolver(db)
		caller = users.Credential{UID: 500, GID: 501}
	})

	Context("when the user is a known name", func() {
		BeforeEach(func() {
			db.LookupUserNameReturns(users.User{Name: "devil", UID: 666, GID: 777, Home: "/home/fieryunderworld"}, nil)
		})

		It("takes uid, gid, home and username from the record", func() {
			identity, err := resolver.Resolve(logger, users.ParseSpec("devil"), caller)
			Expect(err).NotTo(HaveOccurred())
			Expect(identity.UID).To(Equal(666))
			Expect(identity.GID).To(Equal(777))
			Expect(identity.Home).To(Equal("/home/fieryunderworld"))
			Expect(identity.Username).To(Equal("devil"))
			Expect(identity.HasRecord).To(BeTrue())
			Expect(identity.ExplicitGroups).To(BeNil())
		})

		It("does not reverse-lookup the uid", func() {
			_, err := resolver.Resolve(logger, users.ParseSpec("devil"), caller)
			Expect(err).NotTo(HaveOccurred())
			Expect(db.LookupUIDCallCount()).To(Equal(0))
		})
	})

	Context("when the user name is not in the database", func() {
		It("returns an error naming the user", func() {
			_, err := resolver.Resolve(logger, users.ParseSpec("doesnotexist123"), caller)
			Expect(err).To(MatchError(ContainSubstring("doesnotexist123")))
			Expect(errors.Is(err, users.ErrNotFound)).To(BeTrue())
		})
	})

	Context("when the user is numeric", func() {
		It("uses the literal uid without requiring a passwd record", func() {
			identity, err := resolver.Resolve(logger, users.ParseSpec("1234"), caller)
			Expect(err).NotTo(HaveOccurred())
			Expect(identity.UID).To(Equal(1234))
			Expect(identity.GID).To(Equal(caller.GID))
			Expect(identity.Home).To(Equal("/"))
			Expect(identity.HasRecord).To(BeFalse())
		})

		It("reverse-looks-up the uid for a canonical record", func() {
			db.LookupUIDReturns(users.User{Name: "devil", UID: 666, GID: 777, Home: "/home/fieryunderworld"}, nil)

			identity, err := resolver.Resolve(logger, users.ParseSpec("666"), caller)
			Expect(err).NotTo(HaveOccurred())
			Expect(db.LookupUIDArgsForCall(0)).To(Equal(666))
			Expect(identity.GID).To(Equal(777))
			Expect(identity.Home).To(Equal("/home/fieryunderworld"))
			Expect(identity.Username).To(Equal("devil"))
			Expect(identity.HasRecord).To(BeTrue())
		})

		It("treats a trailing non-digit as a name, not a number", func() {
			_, err := resolver.Resolve(logger, users.ParseSpec("123abc"), caller)
			Expect(err).To(HaveOccurred())
			Expect(db.LookupUserNameArgsForCall(0)).To(Equal("123abc"))
		})

		It("fails when the reverse lookup errors for a reason other than a missing record", func() {
			db.LookupUIDReturns(users.User{}, errors.New("passwd file corrupt"))

			_, err := resolver.Resolve(logger, users.ParseSpec("666"), caller)
			Expect(err).To(MatchError(ContainSubstring("passwd file corrupt")))
		})
	})

	Context("when the user is empty", func() {
		It("defaults to the caller's uid and gid", func() {
			identity, err := resolver.Resolve(logger, users.ParseSpec(""), caller)
			Expect(err).NotTo(HaveOccurred())
			Expect(identity.UID).To(Equal(500))
			Expect(identity.GID).To(Equal(501))
		})

		It("still reverse-looks-up the caller's uid", func() {
			db.LookupUIDReturns(users.User{Name: "vcap", UID: 500, GID: 1000, Home: "/home/vcap"}, nil)

			identity, err := resolver.Resolve(logger, users.ParseSpec(":1000"), caller)
			Expect(err).NotTo(HaveOccurred())
			Expect(db.LookupUIDArgsForCall(0)).To(Equal(500))
			Expect(identity.Username).To(Equal("vcap"))
			Expect(identity.Home).To(Equal("/home/vcap"))
		})
	})

	Describe("explicit groups", func() {
		It("resolves numeric tokens directly, first token becoming the gid", func() {
			identity, err := resolver.Resolve(logger, users.ParseSpec("1234:100,200,300"), caller)
			Expect(err).NotTo(HaveOccurred())
			Expect(identity.GID).To(Equal(100))
			Expect(identity.ExplicitGroups).To(Equal([]int{100, 200, 300}))
			Expect(db.LookupGroupNameCallCount()).To(Equal(0))
		})

		It("looks up named tokens in the group database", func() {
			db.LookupGroupNameReturns(users.Group{Name: "staff", GID: 50}, nil)

			identity, err := resolver.Resolve(logger, users.ParseSpec("1234:staff"), caller)
			Expect(err).NotTo(HaveOccurred())
			Expect(db.LookupGroupNameArgsForCall(0)).To(Equal("staff"))
			Expect(identity.GID).To(Equal(50))
			Expect(identity.ExplicitGroups).To(Equal([]int{50}))
		})

		It("preserves token order and duplicates", func() {
			db.LookupGroupNameReturns(users.Group{Name: "staff", GID: 50}, nil)

			identity, err := resolver.Resolve(logger, users.ParseSpec("1234:100,staff,100"), caller)
			Expect(err).NotTo(HaveOccurred())
			Expect(identity.ExplicitGroups).To(Equal([]int{100, 50, 100}))
		})

		It("overrides the gid from the user record", func() {
			db.LookupUserNameReturns(users.User{Name: "devil", UID: 666, GID: 777, Home: "/home/fieryunderworld"}, nil)

			identity, err := resolver.Resolve(logger, users.ParseSpec("devil:100"), caller)
			Expect(err).NotTo(HaveOccurred())
			Expect(identity.GID).To(Equal(100))
			Expect(identity.Home).To(Equal("/home/fieryunderworld"))
		})

		It("returns an error naming an unresolvable group token", func() {
			_, err := resolver.Resolve(logger, users.ParseSpec("1234:nosuchgroup"), caller)
			Expect(err).To(MatchError(ContainSubstring("nosuchgroup")))
		})
	})
})
