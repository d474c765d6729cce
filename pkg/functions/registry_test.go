package functions

import (
	"bytes"
	"testing"
	"text/template"

	"github.com/kairos-io/provider-clustertemplate/pkg/domain"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/twpayne/go-vfs/v4/vfst"
)

func TestRegistry(t *testing.T) {
	g := NewWithT(t)

	fs, cleanup, err := vfst.NewTestFS(map[string]interface{}{
		"/work/age.key":                  testAgeKeyFile,
		"/work/other.key":                "# public key: age1other\n",
		"/work/github-push-token.txt":    "token\n",
		"/work/patches/global/a.yaml.j2": "a",
	})
	g.Expect(err).NotTo(HaveOccurred())
	defer cleanup()

	reg := NewRegistry(fs, Options{
		PatchesRoot:          "/work/patches",
		AgeKeyFile:           "/work/age.key",
		CloudflareTunnelFile: "/work/cloudflare-tunnel.json",
		GitHubPushTokenFile:  "/work/github-push-token.txt",
	})

	t.Run("registers every helper under its template name", func(t *testing.T) {
		funcs := reg.FuncMap()
		g.Expect(funcs).To(HaveLen(8))
		for _, name := range Names() {
			g.Expect(funcs).To(HaveKey(name))
		}
	})

	t.Run("functions are callable from templates", func(t *testing.T) {
		tmpl, err := template.New("t").Funcs(reg.FuncMap()).Parse(
			`{{ age_key "public" }} {{ age_key "public" "/work/other.key" }} {{ github_push_token }} {{ .cidr | nthhost 1 }} {{ range talos_patches "global" }}{{ basename . }}{{ end }}`)
		g.Expect(err).NotTo(HaveOccurred())

		var out bytes.Buffer
		g.Expect(tmpl.Execute(&out, map[string]any{"cidr": "10.0.0.0/24"})).To(Succeed())
		g.Expect(out.String()).To(Equal("age1abcxyz age1other token 10.0.0.1 a.yaml"))
	})

	t.Run("template errors carry the helper error", func(t *testing.T) {
		tmpl, err := template.New("t").Funcs(reg.FuncMap()).Parse(`{{ cloudflare_tunnel_id }}`)
		g.Expect(err).NotTo(HaveOccurred())

		var out bytes.Buffer
		err = tmpl.Execute(&out, nil)
		g.Expect(errors.Is(err, domain.ErrNotFound)).To(BeTrue())
	})

	t.Run("calls helpers by name", func(t *testing.T) {
		result, err := reg.Call(NameAgeKey, []string{"private"})
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(result).To(Equal("AGE-SECRET-KEY-1QYQSZQGPQYQSZQGPQYQSZQGPQYQSZQGP"))

		result, err = reg.Call(NameNthHost, []string{"10.0.0.0/24", "1"})
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(result).To(Equal("10.0.0.1"))

		result, err = reg.Call(NameTalosPatches, []string{"missing-dir"})
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(result).To(BeEmpty())
	})

	t.Run("rejects unknown names and bad arity", func(t *testing.T) {
		_, err := reg.Call("nope", nil)
		g.Expect(errors.Is(err, domain.ErrInvalidArgument)).To(BeTrue())

		_, err = reg.Call(NameAgeKey, nil)
		g.Expect(errors.Is(err, domain.ErrInvalidArgument)).To(BeTrue())

		_, err = reg.Call(NameNthHost, []string{"10.0.0.0/24", "one"})
		g.Expect(errors.Is(err, domain.ErrInvalidArgument)).To(BeTrue())

		_, err = reg.GitHubDeployKey("a", "b")
		g.Expect(errors.Is(err, domain.ErrInvalidArgument)).To(BeTrue())
	})
}
