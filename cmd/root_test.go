package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/tidwall/gjson"

	"github.com/luma/rollcall/cmd"
	"github.com/luma/rollcall/internal/meta"
)

var _ = Describe("cmd", func() {
	It("prints the build info", func() {
		meta.Version = "v0.1.0"

		out := bytes.NewBuffer([]byte{})
		cmd.RootCmd.SetOut(out)
		cmd.RootCmd.SetArgs([]string{"version"})

		Expect(cmd.RootCmd.Execute()).To(Succeed())
		Expect(gjson.Get(out.String(), "version").String()).To(Equal("v0.1.0"))
	})

	It("generates man pages", func() {
		dir, err := os.MkdirTemp("", "rollcall-man")
		Expect(err).To(Succeed())
		defer os.RemoveAll(dir)

		cmd.RootCmd.SetArgs([]string{"gen", "man", "--dir", dir})
		Expect(cmd.RootCmd.Execute()).To(Succeed())

		Expect(filepath.Join(dir, "rollcall-start.1")).To(BeAnExistingFile())
	})
})
