package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name string
		link string
		want string
	}{
		{"HTTPS", "https://a.com/p/1", "/p/1"},
		{"HTTP", "http://b.com/p/1", "/p/1"},
		{"KeepsQuery", "https://www.dentons.com/en/insights?id=7&x=y", "/en/insights?id=7&x=y"},
		{"HostWithPort", "https://localhost:8080/p", "/p"},
		{"AlreadyRelative", "/en/people/ada", "/en/people/ada"},
		{"HostOnly", "https://a.com", ""},
		{"UppercaseSchemeUntouched", "HTTPS://a.com/p", "HTTPS://a.com/p"},
		{"EmbeddedURLUntouched", "/redirect?to=https://a.com/x", "/redirect?to=https://a.com/x"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeKey(tt.link)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, NormalizeKey(got), "normalization must be idempotent")
		})
	}
}

func TestNormalizeKey_HostIndependent(t *testing.T) {
	assert.Equal(t, NormalizeKey("https://a.com/p/1"), NormalizeKey("https://b.com/p/1"))
}
