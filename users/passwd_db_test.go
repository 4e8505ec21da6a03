package users_test

import (
	"os"
	"path/filepath"

	"code.cloudfoundry.org/execas/users"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PasswdDB", func() {
	var (
		rootFsPath string
		db         users.PasswdDB
	)

	BeforeEach(func() {
		rootFsPath = GinkgoT().TempDir()
		Expect(os.MkdirAll(filepath.Join(rootFsPath, "etc"), 0777)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(rootFsPath, "etc", "passwd"), []byte(
			`root:x:0:0:root:/root:/bin/sh
devil:*:666:777:Beelzebub:/home/fieryunderworld:/usr/bin/false
vcap:x:1000:1000::/home/vcap:/bin/bash`,
		), 0777)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(rootFsPath, "etc", "group"), []byte(
			`root:x:0:
staff:x:50:devil
vcap:x:1000:`,
		), 0777)).To(Succeed())

		db = users.NewPasswdDB(rootFsPath)
	})

	Describe("LookupUserName", func() {
		It("finds a user by name", func() {
			user, err := db.LookupUserName("devil")
			Expect(err).NotTo(HaveOccurred())
			Expect(user).To(Equal(users.User{Name: "devil", UID: 666, GID: 777, Home: "/home/fieryunderworld"}))
		})

		It("returns ErrNotFound for an unknown name", func() {
			_, err := db.LookupUserName("doesnotexist123")
			Expect(err).To(MatchError(users.ErrNotFound))
		})

		It("returns ErrNotFound when the passwd file does not exist", func() {
			Expect(os.Remove(filepath.Join(rootFsPath, "etc", "passwd"))).To(Succeed())
			_, err := db.LookupUserName("devil")
			Expect(err).To(MatchError(users.ErrNotFound))
		})
	})

	Describe("LookupUID", func() {
		It("finds a user by uid", func() {
			user, err := db.LookupUID(1000)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Name).To(Equal("vcap"))
			Expect(user.Home).To(Equal("/home/vcap"))
		})

		It("returns ErrNotFound for an unknown uid", func() {
			_, err := db.LookupUID(4242)
			Expect(err).To(MatchError(users.ErrNotFound))
		})
	})

	Describe("LookupGroupName", func() {
		It("finds a group by name", func() {
			group, err := db.LookupGroupName("staff")
			Expect(err).NotTo(HaveOccurred())
			Expect(group).To(Equal(users.Group{Name: "staff", GID: 50}))
		})

		It("returns ErrNotFound for an unknown group", func() {
			_, err := db.LookupGroupName("nosuchgroup")
			Expect(err).To(MatchError(users.ErrNotFound))
		})

		It("returns ErrNotFound when the group file does not exist", func() {
			Expect(os.Remove(filepath.Join(rootFsPath, "etc", "group"))).To(Succeed())
			_, err := db.LookupGroupName("staff")
			Expect(err).To(MatchError(users.ErrNotFound))
		})
	})
})
