// Package avatar produces default avatar references and checks whether stored ones still load.
package avatar

import (
	"fmt"
	"math/rand/v2"
	"net/url"
	"strings"

	"recipebox/config"
	"recipebox/internal/domain/service"
)

const defaultServiceURL = "https://ui-avatars.com/api/"

// placeholderHosts serve generated images. References on these hosts are never uploads.
var placeholderHosts = []string{"ui-avatars.com", "via.placeholder.com"}

type generator struct {
	serviceURL string
	hosts      []string
	color      func() string
}

// NewGenerator builds the default avatar generator on the configured placeholder service.
func NewGenerator(cfg *config.Config) service.AvatarGenerator {
	serviceURL := defaultServiceURL
	if cfg.Avatar != nil && cfg.Avatar.ServiceURL != "" {
		serviceURL = cfg.Avatar.ServiceURL
	}

	hosts := append([]string{}, placeholderHosts...)
	if u, err := url.Parse(serviceURL); err == nil && u.Hostname() != "" {
		hosts = append(hosts, u.Hostname())
	}

	return &generator{
		serviceURL: serviceURL,
		hosts:      hosts,
		color:      randomColor,
	}
}

// Generate returns a 200px initials avatar for seed on a random background.
func (g *generator) Generate(seed string) string {
	query := url.Values{}
	query.Set("name", strings.TrimSpace(seed))
	query.Set("background", g.color())
	query.Set("color", "fff")
	query.Set("size", "200")

	sep := "?"
	if strings.Contains(g.serviceURL, "?") {
		sep = "&"
	}

	return g.serviceURL + sep + query.Encode()
}

func (g *generator) IsGenerated(ref string) bool {
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}

	host := strings.ToLower(u.Hostname())
	for _, h := range g.hosts {
		if host == h {
			return true
		}
	}

	return false
}

func randomColor() string {
	return fmt.Sprintf("%06x", rand.IntN(0x1000000))
}
