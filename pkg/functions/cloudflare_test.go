package functions

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/kairos-io/provider-clustertemplate/pkg/domain"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/twpayne/go-vfs/v4/vfst"
)

func TestCloudflareTunnel(t *testing.T) {
	g := NewWithT(t)

	fs, cleanup, err := vfst.NewTestFS(map[string]interface{}{
		"/work/tunnel.json":     `{"AccountTag": "A", "TunnelSecret": "S", "TunnelID": "T", "Endpoint": ""}`,
		"/work/no-id.json":      `{"AccountTag": "A", "TunnelSecret": "S"}`,
		"/work/null-id.json":    `{"AccountTag": "A", "TunnelID": null, "TunnelSecret": "S"}`,
		"/work/broken.json":     `{"AccountTag": `,
		"/work/numeric-id.json": `{"AccountTag": "A", "TunnelID": 42, "TunnelSecret": "S"}`,
		"/work/html.json":       `{"AccountTag": "<a&b>", "TunnelID": "T", "TunnelSecret": "é"}`,
	})
	g.Expect(err).NotTo(HaveOccurred())
	defer cleanup()

	t.Run("returns the tunnel id", func(t *testing.T) {
		id, err := CloudflareTunnelID(fs, "/work/tunnel.json")
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(id).To(Equal("T"))
	})

	t.Run("tunnel id errors are distinguishable", func(t *testing.T) {
		_, err := CloudflareTunnelID(fs, "/work/missing.json")
		g.Expect(errors.Is(err, domain.ErrNotFound)).To(BeTrue())

		_, err = CloudflareTunnelID(fs, "/work/broken.json")
		g.Expect(errors.Is(err, domain.ErrMalformed)).To(BeTrue())

		_, err = CloudflareTunnelID(fs, "/work/no-id.json")
		g.Expect(errors.Is(err, domain.ErrMissingField)).To(BeTrue())
		g.Expect(err.Error()).To(ContainSubstring("TunnelID"))

		_, err = CloudflareTunnelID(fs, "/work/null-id.json")
		g.Expect(errors.Is(err, domain.ErrMissingField)).To(BeTrue())

		_, err = CloudflareTunnelID(fs, "/work/numeric-id.json")
		g.Expect(errors.Is(err, domain.ErrMalformed)).To(BeTrue())
	})

	t.Run("tunnel secret is the compact token in a,t,s order", func(t *testing.T) {
		token, err := CloudflareTunnelSecret(fs, "/work/tunnel.json")
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(token).To(Equal(base64.StdEncoding.EncodeToString([]byte(`{"a":"A","t":"T","s":"S"}`))))

		raw, err := base64.StdEncoding.DecodeString(token)
		g.Expect(err).NotTo(HaveOccurred())
		var decoded map[string]string
		g.Expect(json.Unmarshal(raw, &decoded)).To(Succeed())
		g.Expect(decoded).To(Equal(map[string]string{"a": "A", "t": "T", "s": "S"}))
	})

	t.Run("tunnel secret escapes like the reference encoder", func(t *testing.T) {
		token, err := CloudflareTunnelSecret(fs, "/work/html.json")
		g.Expect(err).NotTo(HaveOccurred())
		raw, err := base64.StdEncoding.DecodeString(token)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(string(raw)).To(Equal(`{"a":"<a&b>","t":"T","s":"\u00e9"}`))
	})

	t.Run("tunnel secret reports the missing field", func(t *testing.T) {
		_, err := CloudflareTunnelSecret(fs, "/work/no-id.json")
		g.Expect(errors.Is(err, domain.ErrMissingField)).To(BeTrue())
		g.Expect(err.Error()).To(ContainSubstring("TunnelID"))

		_, err = CloudflareTunnelSecret(fs, "/work/missing.json")
		g.Expect(errors.Is(err, domain.ErrNotFound)).To(BeTrue())

		_, err = CloudflareTunnelSecret(fs, "/work/broken.json")
		g.Expect(errors.Is(err, domain.ErrMalformed)).To(BeTrue())
	})
}
