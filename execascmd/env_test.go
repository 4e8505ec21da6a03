package execascmd

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("envWithHome", func() {
	It("replaces an existing HOME, keeping everything else", func() {
		env := envWithHome([]string{"PATH=/bin", "HOME=/root", "TERM=xterm"}, "/home/vcap")
		Expect(env).To(Equal([]string{"PATH=/bin", "TERM=xterm", "HOME=/home/vcap"}))
	})

	It("adds HOME when the environment has none", func() {
		env := envWithHome([]string{"PATH=/bin"}, "/")
		Expect(env).To(Equal([]string{"PATH=/bin", "HOME=/"}))
	})

	It("does not touch variables that merely begin with HOME", func() {
		env := envWithHome([]string{"HOMEBREW_PREFIX=/opt"}, "/")
		Expect(env).To(Equal([]string{"HOMEBREW_PREFIX=/opt", "HOME=/"}))
	})
})
