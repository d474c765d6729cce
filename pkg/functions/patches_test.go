package functions

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/twpayne/go-vfs/v4/vfst"
)

func TestTalosPatches(t *testing.T) {
	g := NewWithT(t)

	fs, cleanup, err := vfst.NewTestFS(map[string]interface{}{
		"/patches/global/machine-sysctls.yaml.j2": "a",
		"/patches/global/machine-network.yaml.j2": "b",
		"/patches/global/README.md":               "c",
		"/patches/global/.hidden.yaml.j2":         "d",
		"/patches/global/notes.yaml":              "e",
		"/patches/global/nested/deep.yaml.j2":     "f",
		"/patches/controller":                     &vfst.Dir{Perm: 0o755},
		"/patches/not-a-dir":                      "g",
	})
	g.Expect(err).NotTo(HaveOccurred())
	defer cleanup()

	t.Run("lists matching files sorted and non-recursively", func(t *testing.T) {
		files, err := TalosPatches(fs, "/patches", "global")
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(files).To(Equal([]string{
			"/patches/global/machine-network.yaml.j2",
			"/patches/global/machine-sysctls.yaml.j2",
		}))
	})

	t.Run("missing directory is an empty list", func(t *testing.T) {
		files, err := TalosPatches(fs, "/patches", "missing-dir")
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(files).NotTo(BeNil())
		g.Expect(files).To(BeEmpty())
	})

	t.Run("empty directory is an empty list", func(t *testing.T) {
		dir, err := LookupPatchDir(fs, "/patches", "controller")
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(dir.Exists).To(BeTrue())
		g.Expect(dir.Files).To(BeEmpty())
	})

	t.Run("a file in place of the directory is an empty list", func(t *testing.T) {
		dir, err := LookupPatchDir(fs, "/patches", "not-a-dir")
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(dir.Exists).To(BeFalse())
		g.Expect(dir.Files).To(BeEmpty())
	})
}
