package groups_test

import (
	"os"
	"path/filepath"

	"code.cloudfoundry.org/execas/groups"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FileMembershipDB", func() {
	var (
		rootFsPath string
		db         groups.FileMembershipDB
	)

	BeforeEach(func() {
		rootFsPath = GinkgoT().TempDir()
		Expect(os.MkdirAll(filepath.Join(rootFsPath, "etc"), 0777)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(rootFsPath, "etc", "group"), []byte(
			`root:x:0:
daemon:x:1:devil
wheel:x:10:devil,alice
vcap:x:1000:alice
fieryunderworld:x:777:devil`,
		), 0777)).To(Succeed())

		db = groups.NewFileMembershipDB(rootFsPath)
	})

	It("lists the primary gid first, then member groups in file order", func() {
		buf := make([]int, 10)
		n, err := db.Grouplist("devil", 777, buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(buf[:n]).To(Equal([]int{777, 1, 10}))
	})

	It("reports the required size when the buffer is too small", func() {
		n, err := db.Grouplist("devil", 777, nil)
		Expect(err).To(MatchError(groups.ErrTooSmall))
		Expect(n).To(Equal(3))
	})

	It("fills an exactly-sized buffer", func() {
		buf := make([]int, 3)
		n, err := db.Grouplist("devil", 777, buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(3))
		Expect(buf).To(Equal([]int{777, 1, 10}))
	})

	It("does not repeat the primary group when the group file lists it too", func() {
		buf := make([]int, 10)
		n, err := db.Grouplist("devil", 1, buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(buf[:n]).To(Equal([]int{1, 10, 777}))
	})

	It("returns only the primary gid for a user in no groups", func() {
		buf := make([]int, 10)
		n, err := db.Grouplist("nobody", 65534, buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(buf[:n]).To(Equal([]int{65534}))
	})

	It("returns only the primary gid when the group file does not exist", func() {
		Expect(os.Remove(filepath.Join(rootFsPath, "etc", "group"))).To(Succeed())

		buf := make([]int, 10)
		n, err := db.Grouplist("devil", 777, buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(buf[:n]).To(Equal([]int{777}))
	})
})
